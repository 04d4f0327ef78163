package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/movisimple/internal/config"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/models"
)

const (
	recordSeparator = "|"
	recordFields    = 3

	// maxRecordLength bounds a single line, line ending included. Longer
	// lines are skipped as malformed.
	maxRecordLength = 4096
)

// userFileRepository is the flat-file implementation of [UserRepository].
//
// All access goes through mu so that the duplicate-email check and the
// append of a new record happen atomically with respect to other callers
// in the same process.
type userFileRepository struct {
	path string

	mu     sync.Mutex
	logger *logger.Logger
}

// NewUserFileRepository constructs a [UserRepository] backed by the file at
// cfg.UsersFile. The parent directory is created when missing; the file
// itself is created on the first registration.
func NewUserFileRepository(cfg config.Files, logger *logger.Logger) (UserRepository, error) {
	logger.Debug().Str("path", cfg.UsersFile).Msg("creating user repository")

	if cfg.UsersFile == "" {
		return nil, fmt.Errorf("%w: empty path", ErrOpeningUsersFile)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.UsersFile), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningUsersFile, err)
	}

	return &userFileRepository{
		path:   cfg.UsersFile,
		logger: logger,
	}, nil
}

// CreateUser appends a `name|email|passwordHash` line for user.
//
// Error handling:
//   - an existing record with the same email → [ErrUserAlreadyExists];
//   - failure to open or append the file → [ErrOpeningUsersFile] or
//     [ErrWritingUsersFile] wrapping the os error.
func (r *userFileRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == user.Email {
			log.Debug().Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrUserAlreadyExists
		}
	}

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		log.Err(err).Str("func", "*userFileRepository.CreateUser").Msg("error opening users file")
		return models.User{}, fmt.Errorf("%w: %w", ErrOpeningUsersFile, err)
	}
	defer file.Close()

	if _, err = file.WriteString(formatRecord(user)); err != nil {
		log.Err(err).Str("func", "*userFileRepository.CreateUser").Msg("error appending user record")
		return models.User{}, fmt.Errorf("%w: %w", ErrWritingUsersFile, err)
	}

	return models.User{Name: user.Name, Email: user.Email, PasswordHash: user.PasswordHash}, nil
}

// FindUserByEmail scans the file and returns the first record with a
// matching email, or [ErrNoUserWasFound]. A missing file means no users.
func (r *userFileRepository) FindUserByEmail(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return u, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

// readUsers parses every well-formed record. Blank lines, lines that do
// not have exactly three fields and lines over maxRecordLength are skipped.
func (r *userFileRepository) readUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	file, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userFileRepository.readUsers").Msg("error opening users file")
		return nil, fmt.Errorf("%w: %w", ErrOpeningUsersFile, err)
	}
	defer file.Close()

	var users []models.User
	reader := bufio.NewReaderSize(file, maxRecordLength)
	for lineNumber := 1; ; lineNumber++ {
		line, oversized, err := nextLine(reader)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrReadingUsersFile, err)
		}

		switch {
		case oversized:
			log.Warn().Int("line", lineNumber).Msg("skipping oversized user record")
		case strings.TrimSpace(line) == "":
		default:
			if user, ok := parseRecord(line); ok {
				users = append(users, user)
			} else {
				log.Warn().Int("line", lineNumber).Msg("skipping malformed user record")
			}
		}

		if err != nil {
			return users, nil
		}
	}
}

// nextLine returns the next line without its line ending. A line that does
// not fit the reader buffer is consumed entirely and reported as oversized.
func nextLine(reader *bufio.Reader) (string, bool, error) {
	chunk, err := reader.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return strings.TrimRight(string(chunk), "\r\n"), false, err
	}

	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = reader.ReadSlice('\n')
	}
	return "", true, err
}

func parseRecord(line string) (models.User, bool) {
	parts := strings.Split(line, recordSeparator)
	if len(parts) != recordFields {
		return models.User{}, false
	}

	return models.User{
		Name:         parts[0],
		Email:        parts[1],
		PasswordHash: parts[2],
	}, true
}

func formatRecord(user models.User) string {
	return strings.Join([]string{user.Name, user.Email, user.PasswordHash}, recordSeparator) + "\n"
}
