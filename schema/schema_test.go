package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/buildgen/schema"
)

// TestCommentAnnotation tests the CommentAnnotation type.
func TestCommentAnnotation(t *testing.T) {
	t.Run("Name", func(t *testing.T) {
		ann := &schema.CommentAnnotation{Text: "test comment"}
		assert.Equal(t, "Comment", ann.Name())
	})

	t.Run("Comment_constructor", func(t *testing.T) {
		ann := schema.Comment("Agent represents a field operative.")
		require.NotNil(t, ann)
		assert.Equal(t, "Agent represents a field operative.", ann.Text)
		assert.Equal(t, "Comment", ann.Name())
	})

	t.Run("implements_Annotation", func(_ *testing.T) {
		var _ schema.Annotation = (*schema.CommentAnnotation)(nil)
	})
}

// mockMerger implements both Annotation and Merger.
type mockMerger struct {
	name   string
	values []string
}

func (m *mockMerger) Name() string {
	return m.name
}

func (m *mockMerger) Merge(other schema.Annotation) schema.Annotation {
	if o, ok := other.(*mockMerger); ok {
		return &mockMerger{
			name:   m.name,
			values: append(m.values, o.values...),
		}
	}
	return m
}

// TestMergerInterface tests the Merger interface.
func TestMergerInterface(t *testing.T) {
	t.Run("merge_same_type", func(t *testing.T) {
		m1 := &mockMerger{name: "Test", values: []string{"a", "b"}}
		m2 := &mockMerger{name: "Test", values: []string{"c", "d"}}

		merged := m1.Merge(m2)
		require.NotNil(t, merged)

		mm, ok := merged.(*mockMerger)
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b", "c", "d"}, mm.values)
	})

	t.Run("merge_different_type", func(t *testing.T) {
		m1 := &mockMerger{name: "Test", values: []string{"a", "b"}}
		merged := m1.Merge(schema.Comment("x"))
		assert.Equal(t, m1, merged)
	})

	t.Run("implements_both_interfaces", func(_ *testing.T) {
		var merger mockMerger

		var _ schema.Annotation = &merger
		var _ schema.Merger = &merger
	})
}
