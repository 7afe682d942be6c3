package guard

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPhotoNotConstructed = errors.New("Photo must be created via NewPhoto")

type photo struct {
	url   string
	guard ConstructorGuard
}

func newPhoto(url string) (photo, error) {
	if url == "" {
		return photo{}, errors.New("url is required")
	}
	return photo{url: url, guard: NewConstructorGuard()}, nil
}

func (p photo) Validate() error {
	return p.guard.Validate(errPhotoNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	customErr := errors.New("custom")
	tests := []struct {
		name    string
		guard   ConstructorGuard
		err     error
		wantErr error
	}{
		{"constructed passes", NewConstructorGuard(), customErr, nil},
		{"constructed passes with nil error", NewConstructorGuard(), nil, nil},
		{"zero value returns given error", ConstructorGuard{}, customErr, customErr},
		{"zero value falls back to default", ConstructorGuard{}, nil, ErrDefaultConstructorGuard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructorGuard_OwningValue(t *testing.T) {
	// Given
	built, err := newPhoto("https://cdn.example/drops/1.jpg")
	require.NoError(t, err)
	var literal photo

	// Then
	assert.NoError(t, built.Validate())
	assert.ErrorIs(t, literal.Validate(), errPhotoNotConstructed)
}

func TestConstructorGuard_CopiesKeepState(t *testing.T) {
	// Given
	original, err := newPhoto("https://cdn.example/drops/2.jpg")
	require.NoError(t, err)

	// When
	copied := original
	copied.url = "https://cdn.example/drops/3.jpg"

	// Then
	assert.NoError(t, copied.Validate())
	assert.NoError(t, original.Validate())
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := NewConstructorGuard()
	var wg sync.WaitGroup
	failures := make(chan error, 50)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.Validate(nil); err != nil {
				failures <- err
			}
		}()
	}
	wg.Wait()
	close(failures)

	assert.Empty(t, failures)
}
