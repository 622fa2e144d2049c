package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailNotUnique        = errors.New("this email address is already registered")
	ErrMatchRuleMatchNotSet  = errors.New("the match pattern of a match rule must be set")
	ErrCategoryNameNotSet    = errors.New("the name of a category must be set")
	ErrCategoryTypeInvalid   = errors.New("the category type must be either expense or income")
	ErrCategoryNotOwned      = errors.New("global default categories cannot be modified")
	ErrRecordAmountNegative  = errors.New("the amount of a record must not be negative")
)
