// Package validators provides custom go-playground/validator rules shared by command models.
package validators
