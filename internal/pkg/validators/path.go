package validators

import (
	"os"

	"github.com/go-playground/validator/v10"
)

// StdinSource is the input source value that selects standard input.
const StdinSource = "-"

// InputSourceValidation accepts "-" (standard input) or a path to an existing regular file.
func InputSourceValidation(fl validator.FieldLevel) bool {
	input := fl.Field().String()
	if input == StdinSource {
		return true
	}
	info, err := os.Stat(input)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// OutputDirValidation accepts a path to an existing directory.
func OutputDirValidation(fl validator.FieldLevel) bool {
	info, err := os.Stat(fl.Field().String())
	if err != nil {
		return false
	}
	return info.IsDir()
}

// New returns a validator with the custom path rules registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("inputsource", InputSourceValidation); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("outputdir", OutputDirValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
