package model

import "errors"

var ErrCommentNotFound = errors.New("comment not found")
