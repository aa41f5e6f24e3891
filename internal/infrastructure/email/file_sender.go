package email

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fileSender drops each message into a directory as a text file. Default
// provider for development, where no SMTP relay is around.
type fileSender struct {
	dir string
}

func NewFileSender(dir string) Sender {
	return &fileSender{dir: dir}
}

func (s *fileSender) SendConfirmationCode(ctx context.Context, to, code string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create email directory: %w", err)
	}

	name := fmt.Sprintf("Email_to_%s_%s.txt",
		strings.ReplaceAll(to, ".", "_"),
		time.Now().Format("2006-01-02_15-04-05"),
	)

	body := fmt.Sprintf("Subject: Confirmation code for token:\n\nYour confirmation code is: %s", code)

	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(body), 0o644); err != nil {
		return fmt.Errorf("failed to write email file: %w", err)
	}
	return nil
}
