package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectRequiredImports_SingleModule(t *testing.T) {
	user := AggregateType(KindStruct, "app.model", "User")
	iface := &Aggregate{
		Kind:   AggregateInterface,
		Name:   "UserAPI",
		Module: "app.api",
		Methods: []Method{
			{Name: "getUser", Return: user, Params: []Parameter{{Name: "id", Type: Primitive("int")}}},
			{Name: "listUsers", Return: DynamicArrayOf(user)},
			{Name: "putUser", Return: Void, Params: []Parameter{{Name: "u", Type: user}}},
		},
	}

	// one module, referenced from several methods, appears exactly once
	assert.Equal(t, []string{"app.model"}, CollectRequiredImports(iface))
}

func TestCollectRequiredImports_FirstSeenOrder(t *testing.T) {
	user := AggregateType(KindStruct, "app.model", "User")
	token := AggregateType(KindStruct, "app.auth", "Token")
	status := AggregateType(KindEnum, "app.status", "Status")

	iface := &Aggregate{
		Kind:   AggregateInterface,
		Name:   "API",
		Module: "app.api",
		Methods: []Method{
			// return type is walked before parameters
			{Name: "login", Return: token, Params: []Parameter{{Name: "u", Type: user}}},
			{Name: "check", Return: status, Params: []Parameter{{Name: "t", Type: token}}},
		},
	}

	assert.Equal(t, []string{"app.auth", "app.model", "app.status"}, CollectRequiredImports(iface))
}

func TestCollectRequiredImports_BuiltinsSkipped(t *testing.T) {
	iface := &Aggregate{
		Kind:   AggregateInterface,
		Name:   "Math",
		Module: "app.api",
		Methods: []Method{
			{Name: "add", Return: Primitive("int"), Params: []Parameter{
				{Name: "a", Type: Primitive("int")},
				{Name: "b", Type: Primitive("int")},
			}},
		},
	}

	assert.Empty(t, CollectRequiredImports(iface))
}

func TestCollectRequiredImports_AssocArraySides(t *testing.T) {
	key := AggregateType(KindStruct, "app.keys", "Key")
	value := AggregateType(KindStruct, "app.values", "Value")

	iface := &Aggregate{
		Kind:   AggregateInterface,
		Name:   "Store",
		Module: "app.api",
		Methods: []Method{
			{Name: "dump", Return: AssocArrayOf(key, value)},
		},
	}

	// value side resolves before key side
	assert.Equal(t, []string{"app.values", "app.keys"}, CollectRequiredImports(iface))
}
