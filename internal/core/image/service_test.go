package image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-finder/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "masala chai", CleanName("  Masala   Chai! "))
	assert.Equal(t, "aloo gobi", CleanName("Aloo, Gobi"))
	assert.Equal(t, "", CleanName("!!!"))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "/placeholder.svg?height=300&width=400&text=Dal%20Tadka", Placeholder("Dal Tadka"))
	assert.Equal(t, "/placeholder.svg?height=300&width=400&text=Rice%20%26%20Dal", Placeholder("Rice & Dal"))
}

func TestFind_Static(t *testing.T) {
	s := NewService(config.ImageConfig{})

	assert.Equal(t, vegRecipes+"2013/07/jeera-rice-recipe-1.jpg", s.Find(context.Background(), "Jeera Rice"))
	// 部分包含
	assert.Equal(t, vegRecipes+"2017/12/dal-tadka-recipe-1.jpg", s.Find(context.Background(), "Simple Dal Tadka"))
	// 完全相同優先於部分包含
	assert.Equal(t, vegRecipes+"2022/06/onion-pakora-recipe-1.jpg", s.Find(context.Background(), "Onion Pakora"))
}

func TestFind_PlaceholderWhenDisabled(t *testing.T) {
	s := NewService(config.ImageConfig{UnsplashAccessKey: "k"})
	assert.Equal(t, Placeholder("Spiced Onion Sabzi"), s.Find(context.Background(), "Spiced Onion Sabzi"))
}

func TestFind_Unsplash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID access", r.Header.Get("Authorization"))
		assert.Equal(t, "crispy potato fry indian food", r.URL.Query().Get("query"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"urls":{"regular":"https://images.example/potato.jpg"}}]}`))
	}))
	defer srv.Close()

	s := NewService(config.ImageConfig{
		Enabled:           true,
		UnsplashAccessKey: "access",
		UnsplashBaseURL:   srv.URL,
	})
	assert.Equal(t, "https://images.example/potato.jpg", s.Find(context.Background(), "Crispy Potato Fry"))
}

func TestFind_PixabayAfterUnsplashFailure(t *testing.T) {
	unsplash := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer unsplash.Close()

	pixabay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/", r.URL.Path)
		assert.Equal(t, "pix", q.Get("key"))
		assert.Equal(t, "crispy potato fry indian food", q.Get("q"))
		assert.Equal(t, "3", q.Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits":[{"webformatURL":"https://pixabay.example/a.jpg"},{"webformatURL":"https://pixabay.example/b.jpg"}]}`))
	}))
	defer pixabay.Close()

	s := NewService(config.ImageConfig{
		Enabled:           true,
		UnsplashAccessKey: "access",
		UnsplashBaseURL:   unsplash.URL,
		PixabayAPIKey:     "pix",
		PixabayBaseURL:    pixabay.URL,
	})
	assert.Equal(t, "https://pixabay.example/a.jpg", s.Find(context.Background(), "Crispy Potato Fry"))
}

func TestFind_AllRemoteFail(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer slow.Close()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits":[]}`))
	}))
	defer empty.Close()

	s := NewService(config.ImageConfig{
		Enabled:           true,
		UnsplashAccessKey: "access",
		UnsplashBaseURL:   slow.URL,
		PixabayAPIKey:     "pix",
		PixabayBaseURL:    empty.URL,
		Timeout:           50 * time.Millisecond,
	})
	assert.Equal(t, Placeholder("Crispy Potato Fry"), s.Find(context.Background(), "Crispy Potato Fry"))
}
