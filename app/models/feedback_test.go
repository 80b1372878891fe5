package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackValidation(t *testing.T) {
	tests := []struct {
		name     string
		feedback *FeedbackBlog
		wantErr  bool
	}{
		{
			name: "valid feedback",
			feedback: &FeedbackBlog{
				ID:       "f1",
				Title:    "Latin translation",
				Content:  "Lorem ipsum dolor",
				Tag:      "Feature",
				AuthorID: "u1",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			feedback: &FeedbackBlog{
				ID:       "f1",
				Content:  "Lorem ipsum dolor",
				Tag:      "Feature",
				AuthorID: "u1",
			},
			wantErr: true,
		},
		{
			name: "missing tag",
			feedback: &FeedbackBlog{
				ID:       "f1",
				Title:    "Latin translation",
				Content:  "Lorem ipsum dolor",
				AuthorID: "u1",
			},
			wantErr: true,
		},
		{
			name: "missing author",
			feedback: &FeedbackBlog{
				ID:      "f1",
				Title:   "Latin translation",
				Content: "Lorem ipsum dolor",
				Tag:     "Feature",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.feedback.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedbackBeforeCreate(t *testing.T) {
	feedback := &FeedbackBlog{
		Title: "Test",
		Tag:   "Bug",
	}

	assert.Nil(t, feedback.Likes)
	assert.Nil(t, feedback.Comments)
	feedback.BeforeCreate()
	assert.NotNil(t, feedback.Likes)
	assert.NotNil(t, feedback.Comments)
	assert.Empty(t, feedback.Likes)
	assert.Empty(t, feedback.Comments)
}

func TestFeedbackToggleLike(t *testing.T) {
	feedback := &FeedbackBlog{
		Title: "Test",
		Tag:   "Bug",
		Likes: []string{},
	}

	t.Run("adds when absent", func(t *testing.T) {
		added := feedback.ToggleLike("u1")
		assert.True(t, added)
		assert.Equal(t, []string{"u1"}, feedback.Likes)
	})

	t.Run("removes when present", func(t *testing.T) {
		added := feedback.ToggleLike("u1")
		assert.False(t, added)
		assert.Empty(t, feedback.Likes)
	})

	t.Run("contains each id at most once", func(t *testing.T) {
		feedback.ToggleLike("u1")
		feedback.ToggleLike("u2")
		feedback.ToggleLike("u1")
		feedback.ToggleLike("u1")
		assert.Equal(t, []string{"u2", "u1"}, feedback.Likes)
	})
}

func TestFeedbackCommentManagement(t *testing.T) {
	feedback := &FeedbackBlog{
		Title:    "Test",
		Tag:      "Bug",
		Comments: []string{},
	}

	t.Run("add comment", func(t *testing.T) {
		err := feedback.AddComment("c1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"c1"}, feedback.Comments)
	})

	t.Run("add empty comment id", func(t *testing.T) {
		err := feedback.AddComment("")
		assert.Error(t, err)
	})

	t.Run("remove existing comment", func(t *testing.T) {
		err := feedback.RemoveComment("c1")
		assert.NoError(t, err)
		assert.Empty(t, feedback.Comments)
	})

	t.Run("remove non-existent comment", func(t *testing.T) {
		err := feedback.RemoveComment("missing")
		assert.Error(t, err)
	})
}
