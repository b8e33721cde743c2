package model

import (
	mumlerr "github.com/msto63/mUML/foundation/core/error"
)

func notFound(format string, args ...interface{}) error {
	return mumlerr.Newf(format, args...).WithCode(mumlerr.CodeNotFound)
}

func alreadyExists(format string, args ...interface{}) error {
	return mumlerr.Newf(format, args...).WithCode(mumlerr.CodeAlreadyExists)
}

func invalid(format string, args ...interface{}) error {
	return mumlerr.Newf(format, args...).WithCode(mumlerr.CodeInvalidInput)
}

func dangling(format string, args ...interface{}) error {
	return mumlerr.Newf(format, args...).WithCode(mumlerr.CodeDanglingReference)
}
