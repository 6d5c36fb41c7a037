package validation

// ProjectValidator provides validation for project-related operations
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectForCreation validates project fields for creation
func (pv *ProjectValidator) ValidateProjectForCreation(name string, color string, billingRate *float64) error {
	validationError := NewValidationError()

	trimmed := pv.validator.TrimAndValidateString(name)
	if !pv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("name")
	} else if !pv.validator.IsValidStringLength(trimmed, 1, NameMaxLength) {
		validationError.AddInvalidLengthError("name", name, 1, NameMaxLength)
	}

	if color != "" && !pv.validator.IsValidHexColor(color) {
		validationError.AddInvalidFormatError("color", color, "#RRGGBB")
	}

	if billingRate != nil && *billingRate < 0 {
		validationError.AddInvalidValueError("billing_rate", *billingRate, "must not be negative")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateProjectID validates a project ID
func (pv *ProjectValidator) ValidateProjectID(id int64) error {
	if !pv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("project_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
