// Package controller holds the stateful, UI-facing side of the client: filter
// and form state, in-flight guards, and the banners a frontend renders. All
// controllers are safe for concurrent use; network calls happen on the
// caller's goroutine.
package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrFormHidden     = errors.New("the form is not open")
	ErrValidation     = errors.New("validation failed")
)

// Alert is a transient banner shown near the top of a form.
type Alert struct {
	Type    string
	Message string
}

const (
	AlertSuccess = "success"
	AlertError   = "error"
)

func successAlert(message string) *Alert {
	return &Alert{Type: AlertSuccess, Message: message}
}

func errorAlert(message string) *Alert {
	return &Alert{Type: AlertError, Message: message}
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

// fieldErrorMessages keys each message by field name, the shape the auth forms
// render inline under each input.
func fieldErrorMessages(err error) map[string]string {
	messages := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		messages[fe.Field()] = getMessage(fe)
	}

	return messages
}

func getMessage(fe validator.FieldError) string {
	if fe.Type() == reflect.TypeOf("") {
		return getMessageForString(fe)
	}

	return getMessageForNumber(fe)
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "ce champ est requis"
	case "lte", "max":
		return "doit être inférieur ou égal à " + fe.Param()
	case "gte", "min":
		return "doit être supérieur ou égal à " + fe.Param()
	}

	return "valeur incorrecte"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "ce champ est requis"
	case "email":
		return "email invalide"
	case "min":
		return "minimum " + fe.Param() + " caractères"
	case "max":
		return "maximum " + fe.Param() + " caractères"
	case "eqfield":
		return "les mots de passe ne correspondent pas"
	case "number", "numeric":
		return "numéro invalide"
	case "oneof":
		return "valeur attendue parmi : " + fe.Param()
	}

	return "valeur incorrecte"
}
