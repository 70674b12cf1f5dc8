package domain

import "errors"

var ErrClinicNotFound = errors.New("clinic not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyLoginAttempts = errors.New("too many login attempts")
