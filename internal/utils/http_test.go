package utils

import (
	"encoding/json"
	"errors"
	"strings"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_EmptySliceIsArray(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, []string{}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected body '[]', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_MessageEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	data := struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}{Message: "login successful", Token: "abc"}

	_, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestReadJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"bob","extra":1}`))

	var dst struct {
		Username string `json:"username"`
	}
	if err := ReadJSON(w, r, &dst); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if dst.Username != "bob" {
		t.Errorf("expected username bob, got %q", dst.Username)
	}
}

func TestReadJSON_EmptyBody(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	var dst map[string]any
	if err := ReadJSON(w, r, &dst); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got: %v", err)
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))

	var dst map[string]any
	if err := ReadJSON(w, r, &dst); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestReadJSON_TooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	big := `{"username":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))

	var dst map[string]any
	err := ReadJSON(w, r, &dst)

	var maxErr *http.MaxBytesError
	if !errors.As(err, &maxErr) {
		t.Fatalf("expected *http.MaxBytesError, got: %v", err)
	}
}
