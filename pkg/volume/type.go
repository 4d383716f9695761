package volume

import (
	"fmt"
	"strings"
)

type Type uint8

const (
	TypeSystem  = Type(0)
	TypeCommand = Type(1)
	TypeNone    = Type(2)

	TypeDefault = TypeSystem
)

var (
	AllTypes = Types{
		TypeSystem,
		TypeCommand,
		TypeNone,
	}
)

func (this *Type) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "system", "":
		*this = TypeSystem
		return nil
	case "command", "cmd":
		*this = TypeCommand
		return nil
	case "none", "dry":
		*this = TypeNone
		return nil
	default:
		return fmt.Errorf("illegal-volume-type: %s", plain)
	}
}

func (this Type) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-volume-type-%d", this)
	}
	return string(v)
}

func (this Type) MarshalText() (text []byte, err error) {
	switch this {
	case TypeSystem:
		return []byte("system"), nil
	case TypeCommand:
		return []byte("command"), nil
	case TypeNone:
		return []byte("none"), nil
	default:
		return nil, fmt.Errorf("illegal volume type: %d", this)
	}
}

func (this *Type) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Types []Type

func (this Types) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Types) String() string {
	return strings.Join(this.Strings(), ",")
}
