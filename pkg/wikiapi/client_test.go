package wikiapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		Lang:       "en",
		BaseURL:    srv.URL,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	})
}

func TestWikitext(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "query" || q.Get("prop") != "revisions" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("titles") != "Leaning_Tower_of_Pisa" {
			t.Errorf("titles = %q, want underscored form", q.Get("titles"))
		}
		fmt.Fprint(w, `{"query":{"pages":{"123":{"title":"Leaning Tower of Pisa","revisions":[{"*":"{{coord|43.723|10.3966}}"}]}}}}`)
	})

	text, err := client.Wikitext(context.Background(), "Leaning Tower of Pisa")
	if err != nil {
		t.Fatalf("Wikitext() error = %v", err)
	}
	if text != "{{coord|43.723|10.3966}}" {
		t.Errorf("Wikitext() = %q", text)
	}
}

func TestWikitextPageNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"pages":{"-1":{"title":"Nope","missing":""}}}}`)
	})

	_, err := client.Wikitext(context.Background(), "Nope")
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("Wikitext() error = %v, want ErrPageNotFound", err)
	}
}

func TestWikitextAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":"maxlag","info":"try again later"}}`)
	})

	_, err := client.Wikitext(context.Background(), "Anything")
	if err == nil {
		t.Fatal("Wikitext() error = nil, want api error")
	}
	var apiErr *apiError
	if !errors.As(err, &apiErr) || apiErr.Code != "maxlag" {
		t.Errorf("Wikitext() error = %v, want maxlag api error", err)
	}
}

func TestWikitextRetriesServerErrors(t *testing.T) {
	attempts := 0
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"query":{"pages":{"1":{"title":"T","revisions":[{"*":"ok"}]}}}}`)
	})

	text, err := client.Wikitext(context.Background(), "T")
	if err != nil {
		t.Fatalf("Wikitext() error = %v", err)
	}
	if text != "ok" || attempts != 2 {
		t.Errorf("Wikitext() = %q after %d attempts, want ok after 2", text, attempts)
	}
}

func TestWikitextNoRetryOnClientError(t *testing.T) {
	attempts := 0
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := client.Wikitext(context.Background(), "T")
	if err == nil {
		t.Fatal("Wikitext() error = nil, want failure")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (4xx must not be retried)", attempts)
	}
}

type memCache map[string]string

func (c memCache) Get(lang, title string) (string, bool) {
	v, ok := c[lang+"/"+title]
	return v, ok
}

func (c memCache) Put(lang, title, wikitext string) error {
	c[lang+"/"+title] = wikitext
	return nil
}

func TestWikitextUsesCache(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"query":{"pages":{"1":{"title":"T","revisions":[{"*":"fresh"}]}}}}`)
	}))
	t.Cleanup(srv.Close)

	cache := memCache{}
	client := New(Config{Lang: "en", BaseURL: srv.URL, Cache: cache, RetryDelay: time.Millisecond})

	for i := 0; i < 3; i++ {
		text, err := client.Wikitext(context.Background(), "T")
		if err != nil {
			t.Fatalf("Wikitext() error = %v", err)
		}
		if text != "fresh" {
			t.Errorf("Wikitext() = %q, want fresh", text)
		}
	}
	if requests != 1 {
		t.Errorf("server saw %d requests, want 1 (cache must serve the rest)", requests)
	}
}

func TestPagesWithTemplate(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("eicontinue") == "" {
			fmt.Fprint(w, `{
				"continue":{"eicontinue":"10|next"},
				"query":{"embeddedin":[
					{"title":"Uffizi","ns":0},
					{"title":"User:Somebody","ns":2},
					{"title":"Template talk:Infobox museum","ns":11}
				]}
			}`)
			return
		}
		fmt.Fprint(w, `{"query":{"embeddedin":[{"title":"Louvre","ns":0}]}}`)
	})

	pages, err := client.PagesWithTemplate(context.Background(), "Template:Infobox museum", false)
	if err != nil {
		t.Fatalf("PagesWithTemplate() error = %v", err)
	}
	want := []string{"Uffizi", "Louvre"}
	if len(pages) != len(want) {
		t.Fatalf("PagesWithTemplate() = %v, want %v", pages, want)
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Errorf("pages[%d] = %q, want %q", i, pages[i], want[i])
		}
	}
}

func TestPagesWithTemplateKeepsReservedWhenAsked(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query":{"embeddedin":[{"title":"User:Somebody","ns":2}]}}`)
	})

	pages, err := client.PagesWithTemplate(context.Background(), "Template:X", true)
	if err != nil {
		t.Fatalf("PagesWithTemplate() error = %v", err)
	}
	if len(pages) != 1 || pages[0] != "User:Somebody" {
		t.Errorf("PagesWithTemplate() = %v, want the user page kept", pages)
	}
}

func TestPagesInCategory(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("cmtitle") {
		case "Category:Churches":
			fmt.Fprint(w, `{"query":{"categorymembers":[
				{"title":"Duomo","ns":0},
				{"title":"Category:Chapels","ns":14}
			]}}`)
		case "Category:Chapels":
			fmt.Fprint(w, `{"query":{"categorymembers":[
				{"title":"Sistine Chapel","ns":0},
				{"title":"Category:Churches","ns":14}
			]}}`)
		default:
			t.Errorf("unexpected category %q", r.URL.Query().Get("cmtitle"))
			fmt.Fprint(w, `{"query":{"categorymembers":[]}}`)
		}
	})

	// Depth 5 with a cycle between the two categories: the visited set
	// must stop the recursion.
	pages, err := client.PagesInCategory(context.Background(), "Category:Churches", 5)
	if err != nil {
		t.Fatalf("PagesInCategory() error = %v", err)
	}
	want := []string{"Duomo", "Sistine Chapel"}
	if len(pages) != len(want) {
		t.Fatalf("PagesInCategory() = %v, want %v", pages, want)
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Errorf("pages[%d] = %q, want %q", i, pages[i], want[i])
		}
	}
}

func TestPagesInCategoryDepthZero(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cmtitle") != "Category:Churches" {
			t.Errorf("depth 0 must not descend, got %q", r.URL.Query().Get("cmtitle"))
		}
		fmt.Fprint(w, `{"query":{"categorymembers":[
			{"title":"Duomo","ns":0},
			{"title":"Category:Chapels","ns":14}
		]}}`)
	})

	pages, err := client.PagesInCategory(context.Background(), "Category:Churches", 0)
	if err != nil {
		t.Fatalf("PagesInCategory() error = %v", err)
	}
	if len(pages) != 1 || pages[0] != "Duomo" {
		t.Errorf("PagesInCategory() = %v, want just Duomo", pages)
	}
}

func TestPagesInCategoryContinuation(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cmcontinue") == "" {
			fmt.Fprint(w, `{
				"continue":{"cmcontinue":"page|x"},
				"query":{"categorymembers":[{"title":"First","ns":0}]}
			}`)
			return
		}
		fmt.Fprint(w, `{"query":{"categorymembers":[{"title":"Second","ns":0}]}}`)
	})

	pages, err := client.PagesInCategory(context.Background(), "Category:Things", 0)
	if err != nil {
		t.Fatalf("PagesInCategory() error = %v", err)
	}
	if len(pages) != 2 || pages[0] != "First" || pages[1] != "Second" {
		t.Errorf("PagesInCategory() = %v, want [First Second]", pages)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Leaning Tower of Pisa", "Leaning_Tower_of_Pisa"},
		{" padded ", "padded"},
		{"Already_fine", "Already_fine"},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
