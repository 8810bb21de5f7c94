package gateway

import (
	"chat-relay/errors"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const maxMessageLength = 2000

var (
	usernamePattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)
	channelNamePattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("channelname", func(fl validator.FieldLevel) bool {
		return channelNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("message", func(fl validator.FieldLevel) bool {
		content := fl.Field().String()
		return strings.TrimSpace(content) != "" && utf8.RuneCountInString(content) <= maxMessageLength
	})
	return v
}

// Validate checks a command against its validation tags and returns the
// sentinel error matching the first failing field.
func Validate(cmd any) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	fe := fieldErrors[0]
	return fmt.Errorf("%w: field %s failed on %s", sentinelOf(fe), fe.Field(), fe.Tag())
}

func sentinelOf(fe validator.FieldError) error {
	switch fe.Tag() {
	case "username":
		return errors.ErrInvalidUsername
	case "channelname":
		return errors.ErrInvalidChannelName
	case "message":
		return errors.ErrInvalidMessage
	}
	switch fe.StructField() {
	case "Address", "Port":
		return errors.ErrInvalidPairRequest
	}
	return errors.ErrInvalidPayload
}
