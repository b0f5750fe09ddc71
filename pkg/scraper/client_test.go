package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newSuggestionServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != suggestionsPath {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
			t.Errorf("expected AJAX header on %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
}

func TestResolveGroupKeyExactMatch(t *testing.T) {
	server := newSuggestionServer(t, `[
		{"key": "15.14Д-ГГ01/24м", "name": "Группа 15.14д-гг01/24м", "type": "group"},
		{"key": "other", "name": "Другая группа", "type": "group"}
	]`)
	defer server.Close()

	client := NewClient(server.URL)
	got := client.ResolveGroupKey("", "15.14д-гг01/24м")
	if got != "15.14Д-ГГ01/24м" {
		t.Errorf("expected the site's canonical key, got %q", got)
	}
}

func TestResolveGroupKeyNoMatchKeepsInput(t *testing.T) {
	server := newSuggestionServer(t, `[{"key": "unrelated", "name": "x", "type": "group"}]`)
	defer server.Close()

	client := NewClient(server.URL)
	if got := client.ResolveGroupKey("", "15.14д-гг01/24м"); got != "15.14д-гг01/24м" {
		t.Errorf("expected raw group to pass through, got %q", got)
	}
}

func TestResolveGroupKeyPrefersURLParameter(t *testing.T) {
	server := newSuggestionServer(t, `[]`)
	defer server.Close()

	client := NewClient(server.URL)
	got := client.ResolveGroupKey("https://rasp.rea.ru/?q=15.14%D0%B4-%D0%B3%D0%B301%2F24%D0%BC", "ignored")
	if got != "15.14д-гг01/24м" {
		t.Errorf("expected the q parameter value, got %q", got)
	}
}

func TestResolveGroupKeyDegradesOnNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if got := client.ResolveGroupKey("", "группа"); got != "группа" {
		t.Errorf("expected unmodified input on failure, got %q", got)
	}
}

func TestFetchWeekEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(suggestionsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"key": "тест", "name": "Тест", "type": "group"}]`))
	})
	mux.HandleFunc(scheduleCardPath, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("selection") != "тест" {
			t.Errorf("unexpected selection %q", r.URL.Query().Get("selection"))
		}
		w.Write([]byte(`
			<table>
				<h5>Понедельник 02.09.2024</h5>
				<tr>
					<td>1 пара<br>09:00<br>10:30</td>
					<td><a class="task" data-elementid="42">Математика<span>Лекция</span></a></td>
				</tr>
			</table>`))
	})
	mux.HandleFunc(detailsPath, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "42" {
			t.Errorf("unexpected detail id %q", r.URL.Query().Get("id"))
		}
		w.Write([]byte(`
			<div class="element-info-body">
				<p>Преподаватель:</p>
				<p>school</p>
				<p>Иванов И.И.</p>
				<p>Площадка: корпус А</p>
			</div>`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	schedule := client.FetchWeek("", "тест")

	if schedule.Group != "тест" {
		t.Errorf("expected resolved group key, got %q", schedule.Group)
	}
	if len(schedule.Lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(schedule.Lessons))
	}

	lesson := schedule.Lessons[0]
	if lesson.Teacher != "Иванов И.И." {
		t.Errorf("expected enriched teacher, got %q", lesson.Teacher)
	}
	if lesson.ExtraInfo != "Площадка: корпус А" {
		t.Errorf("expected enriched extra info, got %q", lesson.ExtraInfo)
	}
}

func TestFetchWeekNeverFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	schedule := client.FetchWeek("", "любая группа")
	if !schedule.Empty() {
		t.Error("expected an empty schedule when the site is down")
	}
}

func TestFetchWeekRejectsEmptyInput(t *testing.T) {
	// No server: empty input must short-circuit before any network call.
	client := NewClient("http://127.0.0.1:0")
	schedule := client.FetchWeek("", "   ")
	if !schedule.Empty() {
		t.Error("expected an empty schedule for blank group")
	}
}
