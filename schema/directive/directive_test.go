package directive

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, "builder_name", BuilderName("X").Name())
	require.Equal(t, "validator", Validator().Name())
	require.Equal(t, "getter", Getter().Name())
	require.Equal(t, "optional", Optional().Name())
	require.Equal(t, "wire_type", WireType("pb.Agent").Name())
	require.Equal(t, "convert", Convert(StrategyClone).Name())
	require.Equal(t, "variant", Variant("create").Name())
}

func TestBuilderName(t *testing.T) {
	ann := BuilderName("OrgBuilder")
	require.Equal(t, "OrgBuilder", ann.TypeName)
	buf, err := json.Marshal(ann)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"OrgBuilder"}`, string(buf))
}

func TestConvert(t *testing.T) {
	buf, err := json.Marshal(Convert(StrategyMap))
	require.NoError(t, err)
	require.JSONEq(t, `{"strategy":"map"}`, string(buf))
}
