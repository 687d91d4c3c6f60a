package report

import (
	"github.com/ezrec/myiss/translate"
)

var f = translate.From

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a boolean expression", string(err))
}
