package fastjson

// Undefined mirrors the host runtime's undefined. It serializes as null in
// array position and drops the whole pair in object position.
type Undefined struct{}

// ToJSONer is implemented by host values that substitute a replacement value
// for themselves before serialization. The substitution happens at the same
// recursion depth as the original value.
type ToJSONer interface {
	ToJSON() interface{}
}

type Member struct {
	Key   string
	Value interface{}
}

// Object is a string-keyed mapping that keeps the member order the host gave
// it. ToJSON, when set, replaces the whole object during serialization.
type Object struct {
	Members []Member
	ToJSON  func() interface{}
}

// Get ...
func (o *Object) Get(key string) (interface{}, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func (o *Object) Len() int { return len(o.Members) }

// Set assigns key in place, keeping the position of an existing member.
func (o *Object) Set(key string, val interface{}) *Object {
	for i, m := range o.Members {
		if m.Key == key {
			o.Members[i].Value = val
			return o
		}
	}
	o.Members = append(o.Members, Member{Key: key, Value: val})
	return o
}

func NewObject(members ...Member) *Object {
	return &Object{Members: members}
}

func isUndefined(v interface{}) bool {
	switch v.(type) {
	case Undefined, *Undefined:
		return true
	}
	return false
}
