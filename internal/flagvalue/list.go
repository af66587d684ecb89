package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that may be passed any number of times,
// collecting each parsed value in order.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice of flag values into a repeatable flag.
//
//	flag.Var(flagvalue.ListOf(&tags), "tag", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the collected values as a []T.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String joins the collected values with "; ".
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i, v := range *lv {
		items[i] = fmt.Sprint(v)
	}
	return strings.Join(items, "; ")
}

// Set parses one occurrence of the flag and appends it.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
