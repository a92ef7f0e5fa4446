package ir

// Value is the common interface for every IR entity that produces a
// typed datum: constants and instructions.
//
// addUser/removeUser are unexported, which confines implementations of
// Value to this package — every concrete value variant embeds ValueBase,
// which provides them. This is the "narrow capability trait" design note
// from spec §9 applied to the base interface itself.
type Value interface {
	Type() Type
	Name() string
	SetName(name string)
	Loc() *Location
	SetLoc(loc *Location)
	// Users returns the instructions that reference this value as an
	// operand. Order is unspecified.
	Users() []Instruction

	addUser(i Instruction)
	removeUser(i Instruction)
}

// ValueBase implements the common fields and methods of Value. Concrete
// value and instruction variants embed it.
type ValueBase struct {
	typ   Type
	name  string
	loc   *Location
	users map[Instruction]struct{}
}

// InitValue sets the fields common to every Value. Concrete constructors
// call it first.
func InitValue(v *ValueBase, t Type, name string) {
	v.typ = t
	v.name = canonicalName(name)
}

func (v *ValueBase) Type() Type { return v.typ }
func (v *ValueBase) Name() string { return v.name }
func (v *ValueBase) SetName(name string) { v.name = canonicalName(name) }
func (v *ValueBase) Loc() *Location { return v.loc }
func (v *ValueBase) SetLoc(loc *Location) { v.loc = loc }

func (v *ValueBase) Users() []Instruction {
	users := make([]Instruction, 0, len(v.users))
	for u := range v.users {
		users = append(users, u)
	}
	return users
}

func (v *ValueBase) addUser(i Instruction) {
	if v.users == nil {
		v.users = make(map[Instruction]struct{})
	}
	v.users[i] = struct{}{}
}

func (v *ValueBase) removeUser(i Instruction) {
	delete(v.users, i)
}

// Constant is an immutable literal value in the IR.
type Constant struct {
	ValueBase
	Literal any
}

// NewConstant creates an anonymous constant of type t carrying literal
// as its payload.
func NewConstant(t Type, literal any) *Constant {
	c := &Constant{Literal: literal}
	InitValue(&c.ValueBase, t, "")
	return c
}
