package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/buildgen/compiler/load"
	"github.com/syssam/buildgen/schema/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	cfg := MustNewConfig(WithPackage("example.com/project/model"))
	src, err := Source(cfg, agentSchema())
	require.NoError(t, err)
	code := string(src)

	assert.Contains(t, code, "Code generated by buildgen. DO NOT EDIT.")
	assert.Contains(t, code, "package model")
	assert.Contains(t, code, "type Agent struct {")
	assert.Contains(t, code, "publicKey string")
	assert.Contains(t, code, "knownEnemies []string")
	assert.Contains(t, code, "func (a *Agent) PublicKey() string {")
	assert.Contains(t, code, "func (a *Agent) WearsCrocks() bool {")
	assert.Contains(t, code, "func (a *Agent) KnownEnemies() []string {")
	assert.Contains(t, code, "type AgentBuilder struct {")
	assert.Contains(t, code, "publicKey *string")
	assert.Contains(t, code, "func NewAgentBuilder() *AgentBuilder {")
	assert.Contains(t, code, "func (ab *AgentBuilder) WithPublicKey(v string) *AgentBuilder {")
	assert.Contains(t, code, "func (ab *AgentBuilder) Build() (*Agent, error) {")
	assert.Contains(t, code, `buildgen.NewMissingFieldError("Agent", "public_key")`)
	assert.Contains(t, code, `"github.com/syssam/buildgen"`)

	// Optional fields resolve to the zero value instead of failing.
	assert.NotContains(t, code, `NewMissingFieldError("Agent", "role")`)
	assert.Contains(t, code, "var role string")

	// Presence checks run in declaration order.
	assert.Less(t,
		strings.Index(code, `NewMissingFieldError("Agent", "public_key")`),
		strings.Index(code, `NewMissingFieldError("Agent", "wears_crocks")`),
	)

	assert.Contains(t, code, "func (a *Agent) String() string {")
	assert.Contains(t, code, `builder.WriteString("Agent(")`)
	assert.Contains(t, code, `builder.WriteString(", wears_crocks=")`)
}

func TestSourceBuilderNameOverride(t *testing.T) {
	cfg := MustNewConfig(WithPackage("example.com/project/model"))
	src, err := Source(cfg, &load.Schema{
		Name: "Organization",
		Fields: []*load.Field{
			{Name: "name", Info: &field.TypeInfo{Kind: field.KindText}},
		},
		Annotations: map[string]any{"builder_name": map[string]any{"name": "OrgBuilder"}},
	})
	require.NoError(t, err)
	code := string(src)

	assert.Contains(t, code, "type OrgBuilder struct {")
	assert.Contains(t, code, "func NewOrgBuilder() *OrgBuilder {")
	assert.NotContains(t, code, "OrganizationBuilder")
	// No validator directive, no Build method.
	assert.NotContains(t, code, ") Build() (")
}

func TestSourceDeclarationComment(t *testing.T) {
	cfg := MustNewConfig(WithPackage("example.com/project/model"))
	src, err := Source(cfg, &load.Schema{
		Name: "Payload",
		Fields: []*load.Field{
			{Name: "data", Info: &field.TypeInfo{Kind: field.KindOpaque, Ident: "[]byte"}},
		},
		Annotations: map[string]any{"Comment": map[string]any{"text": "Payload carries an opaque message body."}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Payload carries an opaque message body.")
	assert.NotContains(t, string(src), "record type generated from")
}

func TestSourceNamedTypes(t *testing.T) {
	cfg := MustNewConfig(WithPackage("example.com/project/model"))
	src, err := Source(cfg, &load.Schema{
		Name: "Payload",
		Fields: []*load.Field{
			{Name: "id", Info: &field.TypeInfo{Kind: field.KindOpaque, Ident: "uuid.UUID", PkgPath: "github.com/google/uuid"}},
			{Name: "created_at", Info: &field.TypeInfo{Kind: field.KindOpaque, Ident: "time.Time", PkgPath: "time"}},
			{Name: "raw", Info: &field.TypeInfo{Kind: field.KindOpaque, Ident: "[]byte"}},
		},
	})
	require.NoError(t, err)
	code := string(src)

	assert.Contains(t, code, `"github.com/google/uuid"`)
	assert.Contains(t, code, "id *uuid.UUID")
	assert.Contains(t, code, "createdAt *time.Time")
	assert.Contains(t, code, "raw *[]byte")
}

func TestSourceVariantSet(t *testing.T) {
	cfg := MustNewConfig(WithPackage("example.com/project/model"))
	_, err := Source(cfg, &load.Schema{
		Name:     "Action",
		Variants: []string{"create", "delete"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedShape))
}

func TestGenerate(t *testing.T) {
	target := t.TempDir()
	cfg := MustNewConfig(
		WithPackage("example.com/project/model"),
		WithTarget(target),
		WithWorkers(2),
	)
	err := Generate(context.Background(), cfg,
		agentSchema(),
		&load.Schema{
			Name: "Organization",
			Fields: []*load.Field{
				{Name: "name", Info: &field.TypeInfo{Kind: field.KindText}},
			},
		},
	)
	require.NoError(t, err)

	for _, name := range []string{"agent.go", "organization.go"} {
		buf, err := os.ReadFile(filepath.Join(target, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(buf), "package model")
	}
}

func TestGenerateContinuesPastFailures(t *testing.T) {
	target := t.TempDir()
	cfg := MustNewConfig(
		WithPackage("example.com/project/model"),
		WithTarget(target),
	)
	err := Generate(context.Background(), cfg,
		&load.Schema{Name: "Action", Variants: []string{"create"}},
		agentSchema(),
		&load.Schema{Name: "type"},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedShape))
	assert.True(t, errors.Is(err, ErrInvalidSchema))

	// The healthy declaration still generated.
	_, statErr := os.Stat(filepath.Join(target, "agent.go"))
	assert.NoError(t, statErr)
}

func TestGenerateMissingConfig(t *testing.T) {
	err := Generate(context.Background(), &Config{Package: "example.com/model"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingConfig))

	err = Generate(context.Background(), &Config{Target: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingConfig))
}

func TestGenerateConverter(t *testing.T) {
	target := t.TempDir()
	cfg := MustNewConfig(
		WithPackage("example.com/project/model"),
		WithTarget(target),
		WithConverter(ConverterFunc(func(t *Type) (*jen.File, error) {
			if !t.HasWireType() {
				return nil, nil
			}
			f := t.Config.newFile()
			f.Comment("conversion stub")
			f.Func().Id("convert" + t.Name).Params().Block()
			return f, nil
		})),
	)
	err := Generate(context.Background(), cfg,
		&load.Schema{
			Name: "Organization",
			Fields: []*load.Field{
				{Name: "name", Info: &field.TypeInfo{Kind: field.KindText}},
			},
			Annotations: map[string]any{"wire_type": map[string]any{"type": "pb.Organization"}},
		},
		agentSchema(),
	)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(target, "organization_convert.go"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(target, "agent_convert.go"))
	assert.True(t, os.IsNotExist(err))
}
