package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/syssam/buildgen"
	"github.com/syssam/buildgen/schema"
	"github.com/syssam/buildgen/schema/directive"
	"github.com/syssam/buildgen/schema/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Agent struct {
	buildgen.Schema
}

func (Agent) Fields() []buildgen.Field {
	return []buildgen.Field{
		field.Text("public_key").Getter(),
		field.Bool("wears_crocks").Getter(),
		field.Texts("known_enemies").Getter(),
		field.Text("role").Getter().Optional(),
	}
}

func (Agent) Annotations() []schema.Annotation {
	return []schema.Annotation{directive.Validator()}
}

type Organization struct {
	buildgen.Schema
}

func (Organization) Fields() []buildgen.Field {
	return []buildgen.Field{
		field.Text("name"),
	}
}

func (Organization) Annotations() []schema.Annotation {
	return []schema.Annotation{directive.BuilderName("OrgBuilder")}
}

type Action struct {
	buildgen.Variant
}

func (Action) Variants() []string {
	return []string{"create", "delete"}
}

type Broken struct {
	buildgen.Schema
}

func (Broken) Fields() []buildgen.Field {
	panic("boom")
}

func TestMarshalSchema(t *testing.T) {
	buf, err := MarshalSchema(Agent{})
	require.NoError(t, err)
	s, err := UnmarshalSchema(buf)
	require.NoError(t, err)

	assert.Equal(t, "Agent", s.Name)
	require.Len(t, s.Fields, 4)
	assert.Equal(t, "public_key", s.Fields[0].Name)
	assert.Equal(t, field.KindText, s.Fields[0].Info.Kind)
	assert.Equal(t, field.KindOpaque, s.Fields[1].Info.Kind)
	assert.Equal(t, field.KindSequence, s.Fields[2].Info.Kind)
	for i, f := range s.Fields {
		require.NotNil(t, f.Position)
		assert.Equal(t, i, f.Position.Index)
		assert.Contains(t, f.Annotations, "getter")
	}
	assert.Contains(t, s.Fields[3].Annotations, "optional")
	assert.NotContains(t, s.Fields[0].Annotations, "optional")
	assert.Contains(t, s.Annotations, "validator")
	assert.Empty(t, s.Variants)
}

func TestMarshalSchemaAnnotationArgs(t *testing.T) {
	buf, err := MarshalSchema(Organization{})
	require.NoError(t, err)
	s, err := UnmarshalSchema(buf)
	require.NoError(t, err)

	ann, ok := s.Annotations["builder_name"].(map[string]any)
	require.True(t, ok, "directive arguments survive the JSON round trip as a map")
	assert.Equal(t, "OrgBuilder", ann["name"])
}

func TestMarshalVariants(t *testing.T) {
	buf, err := MarshalSchema(Action{})
	require.NoError(t, err)
	s, err := UnmarshalSchema(buf)
	require.NoError(t, err)
	assert.Equal(t, "Action", s.Name)
	assert.Equal(t, []string{"create", "delete"}, s.Variants)
}

func TestMarshalPanics(t *testing.T) {
	_, err := MarshalSchema(Broken{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Fields panics")
}

func TestMarshalFieldError(t *testing.T) {
	_, err := MarshalDecls(badField{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field name cannot be empty")
}

type badField struct {
	buildgen.Schema
}

func (badField) Fields() []buildgen.Field {
	return []buildgen.Field{field.Text("")}
}

func TestMarshalDecls(t *testing.T) {
	schemas, err := MarshalDecls(Agent{}, Organization{})
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	assert.Equal(t, "Agent", schemas[0].Name)
	assert.Equal(t, "Organization", schemas[1].Name)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "declarations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
declarations:
  - name: Agent
    annotations:
      validator: {}
    fields:
      - name: public_key
        type: {kind: text}
      - name: known_enemies
        type:
          kind: sequence
          params:
            - {kind: text}
        annotations:
          getter: {}
      - name: role
        type: {kind: text}
        annotations:
          optional: {}
`), 0o600))

	schemas, err := Read(path)
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	s := schemas[0]
	assert.Equal(t, "Agent", s.Name)
	assert.Equal(t, path, s.Pos)
	assert.Contains(t, s.Annotations, "validator")
	require.Len(t, s.Fields, 3)
	assert.Equal(t, field.KindText, s.Fields[0].Info.Kind)
	assert.Equal(t, field.KindSequence, s.Fields[1].Info.Kind)
	assert.Contains(t, s.Fields[2].Annotations, "optional")
	for i, f := range s.Fields {
		require.NotNil(t, f.Position)
		assert.Equal(t, i, f.Position.Index)
	}
}

func TestReadErrors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("declarations: []\n"), 0o600))
	_, err = Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no declarations")

	path = filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ]["), 0o600))
	_, err = Read(path)
	assert.Error(t, err)
}
