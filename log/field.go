package log

import (
	"fmt"
	"strconv"
	"time"
)

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	StringType
	BoolType
	DurationType
	ErrorType
	AnyType
)

// Field is a typed key-value pair attached to a log message.
type Field struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f Field) Key() string {
	return f.key
}

func (f Field) Type() FieldType {
	return f.ftype
}

// String renders the field value.
func (f Field) String() string {
	switch f.ftype {
	case IntType:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.vint != 0)
	case DurationType:
		return time.Duration(f.vint).String()
	case ErrorType:
		if err, has := f.vany.(error); has && err != nil {
			return err.Error()
		}

		return "<nil>"
	case AnyType:
		return fmt.Sprint(f.vany)
	default:
		panic(fmt.Sprintf("unknown field type %d", f.ftype))
	}
}

func Int(key string, value int) Field {
	return Field{ftype: IntType, key: key, vint: int64(value)}
}

func Int64(key string, value int64) Field {
	return Field{ftype: IntType, key: key, vint: value}
}

func String(key, value string) Field {
	return Field{ftype: StringType, key: key, vstr: value}
}

func Bool(key string, value bool) Field {
	f := Field{ftype: BoolType, key: key}
	if value {
		f.vint = 1
	}

	return f
}

func Duration(key string, value time.Duration) Field {
	return Field{ftype: DurationType, key: key, vint: int64(value)}
}

// Latency makes a duration field measured from start to now.
func Latency(start time.Time) Field {
	return Duration("latency", time.Since(start))
}

func Error(err error) Field {
	return NamedError("error", err)
}

func NamedError(key string, err error) Field {
	return Field{ftype: ErrorType, key: key, vany: err}
}

func Any(key string, value interface{}) Field {
	return Field{ftype: AnyType, key: key, vany: value}
}
