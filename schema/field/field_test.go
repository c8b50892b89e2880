package field_test

import (
	"testing"

	"github.com/syssam/buildgen/schema/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	fd := field.Text("public_key").
		Getter().
		Comment("hex-encoded signing key").
		Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "public_key", fd.Name)
	assert.Equal(t, field.KindText, fd.Info.Kind)
	assert.Equal(t, "string", fd.Info.String())
	assert.Equal(t, "hex-encoded signing key", fd.Comment)
	require.Len(t, fd.Annotations, 1)
	assert.Equal(t, "getter", fd.Annotations[0].Name())
}

func TestTexts(t *testing.T) {
	fd := field.Texts("known_enemies").Optional().Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, field.KindSequence, fd.Info.Kind)
	require.Len(t, fd.Info.Params, 1)
	assert.Equal(t, field.KindText, fd.Info.Params[0].Kind)
	assert.Equal(t, "[]string", fd.Info.String())
	require.Len(t, fd.Annotations, 1)
	assert.Equal(t, "optional", fd.Annotations[0].Name())
}

func TestSequence(t *testing.T) {
	fd := field.Sequence("scores", int64(0)).Descriptor()
	require.NoError(t, fd.Err)
	require.Len(t, fd.Info.Params, 1)
	assert.Equal(t, field.KindOpaque, fd.Info.Params[0].Kind)
	assert.Equal(t, "int64", fd.Info.Params[0].Ident)
	assert.Equal(t, "[]int64", fd.Info.String())

	fd = field.Sequence("callbacks", func() {}).Descriptor()
	assert.Error(t, fd.Err)
}

func TestSequenceOf(t *testing.T) {
	fd := field.SequenceOf("ids", &field.TypeInfo{
		Kind:    field.KindOpaque,
		Ident:   "uuid.UUID",
		PkgPath: "github.com/google/uuid",
	}).Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "[]uuid.UUID", fd.Info.String())
}

func TestOpaque(t *testing.T) {
	type Credentials struct{ Token string }
	fd := field.Opaque("credentials", Credentials{}).Getter().Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, field.KindOpaque, fd.Info.Kind)
	assert.Contains(t, fd.Info.Ident, "Credentials")
	assert.NotEmpty(t, fd.Info.PkgPath)

	fd = field.Opaque("ptr", &Credentials{}).Descriptor()
	require.NoError(t, fd.Err)
	assert.NotEmpty(t, fd.Info.PkgPath)

	fd = field.Opaque("nothing", nil).Descriptor()
	assert.Error(t, fd.Err)
}

func TestBuiltins(t *testing.T) {
	for ident, fd := range map[string]*field.Descriptor{
		"bool":    field.Bool("active").Descriptor(),
		"int":     field.Int("age").Descriptor(),
		"int32":   field.Int32("rank").Descriptor(),
		"int64":   field.Int64("height").Descriptor(),
		"uint":    field.Uint("count").Descriptor(),
		"uint64":  field.Uint64("nonce").Descriptor(),
		"float64": field.Float64("weight").Descriptor(),
		"[]byte":  field.Bytes("payload").Descriptor(),
	} {
		require.NoError(t, fd.Err)
		assert.Equal(t, field.KindOpaque, fd.Info.Kind)
		assert.Equal(t, ident, fd.Info.Ident)
		assert.Empty(t, fd.Info.PkgPath)
	}
}

func TestTime(t *testing.T) {
	fd := field.Time("created_at").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "time.Time", fd.Info.Ident)
	assert.Equal(t, "time", fd.Info.PkgPath)
}

func TestUUID(t *testing.T) {
	fd := field.UUID("id").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "uuid.UUID", fd.Info.Ident)
	assert.Equal(t, "github.com/google/uuid", fd.Info.PkgPath)
	assert.Equal(t, "UUID", fd.Info.TypeName())
}

func TestEmptyName(t *testing.T) {
	fd := field.Text("").Descriptor()
	assert.Error(t, fd.Err)
}
