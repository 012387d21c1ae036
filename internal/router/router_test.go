package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plant-care-api/internal/router"
)

type taskDTO struct {
	ID           string `json:"id"`
	PlantID      string `json:"plant_id"`
	PlantName    string `json:"plant_name"`
	Type         string `json:"type"`
	RelativeDays int    `json:"relative_days"`
	State        string `json:"state"`
	Overdue      bool   `json:"overdue"`
	Completed    bool   `json:"completed"`
}

type bucketDTO struct {
	Date  string    `json:"date"`
	Tasks []taskDTO `json:"tasks"`
}

func TestHTTP_EndToEnd_CareFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Owner registra una planta con schedule anidado
	plantID := createPlant(t, ts.URL, ownerID, map[string]any{
		"nickname": "Fern",
		"schedule": map[string]any{
			"water": map[string]any{"amount": 3, "unit": "day"},
			"feed":  map[string]any{"amount": 30, "unit": "day"},
		},
	})

	// 2) Otro usuario no la ve (404, nunca 403: no filtramos existencia)
	{
		st, _ := doReq(t, ts.URL, "GET", "/plants/"+plantID, strangerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 get plant by stranger, got %d", st)
		}
	}

	// 3) Sin historial, ambas acciones vencen hoy: water antes que feed
	{
		tasks := listTasks(t, ts.URL, ownerID)
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks due, got %d: %+v", len(tasks), tasks)
		}
		if tasks[0].Type != "water" || tasks[1].Type != "feed" {
			t.Fatalf("expected order water,feed got %s,%s", tasks[0].Type, tasks[1].Type)
		}
		for _, tk := range tasks {
			if tk.State != "due-today" || tk.RelativeDays != 0 || tk.Overdue {
				t.Fatalf("expected due-today rel=0, got %+v", tk)
			}
			if tk.PlantName != "Fern" {
				t.Fatalf("expected plant_name Fern, got %q", tk.PlantName)
			}
			if tk.ID != plantID+":"+tk.Type {
				t.Fatalf("unexpected task id %q", tk.ID)
			}
		}
	}

	// 4) Owner marca el riego como hecho (body vacío = ahora)
	{
		st, body := doReq(t, ts.URL, "POST", "/plants/"+plantID+"/care/water/complete", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete water, got %d body=%s", st, string(body))
		}
		var resp struct {
			Action       string `json:"action"`
			State        string `json:"state"`
			RelativeDays int    `json:"relative_days"`
			LastDone     string `json:"last_done"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Action != "water" || resp.State != "upcoming" || resp.RelativeDays != 3 {
			t.Fatalf("expected water upcoming in 3 days, got %+v", resp)
		}
		if resp.LastDone == "" {
			t.Fatalf("expected last_done set, body=%s", string(body))
		}
	}

	// 5) El riego desaparece de las tareas del día; queda solo feed
	{
		tasks := listTasks(t, ts.URL, ownerID)
		if len(tasks) != 1 || tasks[0].Type != "feed" {
			t.Fatalf("expected only feed due, got %+v", tasks)
		}
	}

	// 6) En el calendario el riego reaparece en su próximo vencimiento
	{
		buckets := listCalendar(t, ts.URL, ownerID, "")
		today := time.Now().Format("2006-01-02")
		nextWater := time.Now().AddDate(0, 0, 3).Format("2006-01-02")

		byDate := map[string][]taskDTO{}
		for _, b := range buckets {
			byDate[b.Date] = b.Tasks
		}
		if got := byDate[today]; len(got) != 1 || got[0].Type != "feed" {
			t.Fatalf("expected feed bucket today, got %+v", got)
		}
		if got := byDate[nextWater]; len(got) != 1 || got[0].Type != "water" {
			t.Fatalf("expected water bucket at %s, got %+v", nextWater, buckets)
		}
	}

	// 7) from excluye el bucket de hoy
	{
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		buckets := listCalendar(t, ts.URL, ownerID, "?from="+tomorrow)
		for _, b := range buckets {
			if b.Date < tomorrow {
				t.Fatalf("expected buckets from %s, got %s", tomorrow, b.Date)
			}
		}
	}

	// 8) Completar por otro usuario => 404; acción desconocida => 400;
	//    prune no tiene historial persistido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/plants/"+plantID+"/care/water/complete", strangerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 complete by stranger, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/plants/"+plantID+"/care/sing/complete", ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown action, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/plants/"+plantID+"/care/prune/complete", ownerID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 complete prune, got %d", st)
		}
	}

	// 9) PATCH "feed": null desprograma el abono y su tarea desaparece
	{
		st, body := doReq(t, ts.URL, "PATCH", "/plants/"+plantID, ownerID, map[string]any{
			"schedule": map[string]any{"feed": nil},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch schedule, got %d body=%s", st, string(body))
		}

		tasks := listTasks(t, ts.URL, ownerID)
		if len(tasks) != 0 {
			t.Fatalf("expected no tasks after unscheduling feed, got %+v", tasks)
		}
	}
}

func TestHTTP_LegacyWaterDays_DerivesWaterTask(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-legacy"

	// Registro viejo: sin schedule, solo el intervalo plano de riego
	createPlant(t, ts.URL, ownerID, map[string]any{
		"common_name": "Snake plant",
		"water_days":  14,
	})

	tasks := listTasks(t, ts.URL, ownerID)
	if len(tasks) != 1 || tasks[0].Type != "water" {
		t.Fatalf("expected single water task from water_days, got %+v", tasks)
	}
	// feed/repot no tienen fallback legacy: no deben aparecer
	for _, tk := range tasks {
		if tk.Type == "feed" || tk.Type == "repot" {
			t.Fatalf("unexpected %s task without schedule entry", tk.Type)
		}
	}
}

func TestHTTP_Calendar_RejectsBadRange(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	if st, _ := doReq(t, ts.URL, "GET", "/me/care/calendar?from=not-a-date", "u1", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad from, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/me/care/calendar?from=2026-08-10&to=2026-08-01", "u1", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for to < from, got %d", st)
	}
}

func TestHTTP_RequiresUser(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Sin X-Debug-User-ID ni Bearer no hay identidad
	for _, path := range []string{"/plants", "/me/care/tasks", "/me/notification-settings"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without user, got %d", path, st)
		}
	}
}

func TestHTTP_NotificationSettings_DefaultsAndUpsert(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "settings-user"

	// Usuario nuevo: defaults, nunca 404
	{
		st, body := doReq(t, ts.URL, "GET", "/me/notification-settings", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 defaults, got %d body=%s", st, string(body))
		}
		var resp struct {
			PushEnabled    bool `json:"push_enabled"`
			ReminderHour   int  `json:"reminder_hour"`
			WaterReminders bool `json:"water_reminders"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.PushEnabled || resp.ReminderHour != 9 || !resp.WaterReminders {
			t.Fatalf("unexpected defaults: %s", string(body))
		}
	}

	// Hora fuera de rango => 400
	{
		st, _ := doReq(t, ts.URL, "PUT", "/me/notification-settings", userID, map[string]any{
			"push_enabled":  true,
			"reminder_hour": 25,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for reminder_hour=25, got %d", st)
		}
	}

	// PUT válido persiste y el GET siguiente lo refleja
	{
		st, body := doReq(t, ts.URL, "PUT", "/me/notification-settings", userID, map[string]any{
			"push_enabled":    true,
			"reminder_hour":   20,
			"water_reminders": true,
			"expo_push_token": "ExponentPushToken[test]",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 upsert, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/me/notification-settings", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get after upsert, got %d", st)
		}
		var resp struct {
			ReminderHour  int    `json:"reminder_hour"`
			FeedReminders bool   `json:"feed_reminders"`
			ExpoPushToken string `json:"expo_push_token"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ReminderHour != 20 || resp.FeedReminders || resp.ExpoPushToken != "ExponentPushToken[test]" {
			t.Fatalf("unexpected settings after upsert: %s", string(body))
		}
	}

	// Sin sender configurado el test push no tiene dispositivo => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/me/notification-settings/test", userID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 test push without sender, got %d", st)
		}
	}
}

func TestHTTP_SeedDemoData(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil, SeedDemoData: true}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/plants", router.DemoUserID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing demo plants, got %d", st)
	}
	var resp []struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if len(resp) != 2 {
		t.Fatalf("expected 2 seeded plants, got %d body=%s", len(resp), string(body))
	}
}

func createPlant(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/plants", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create plant, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create plant: missing id body=%s", string(body))
	}
	return resp.ID
}

func listTasks(t *testing.T, baseURL, userID string) []taskDTO {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/me/care/tasks", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list tasks, got %d body=%s", st, string(body))
	}

	var tasks []taskDTO
	if err := json.Unmarshal(body, &tasks); err != nil {
		t.Fatalf("unmarshal tasks: %v body=%s", err, string(body))
	}
	return tasks
}

func listCalendar(t *testing.T, baseURL, userID, query string) []bucketDTO {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/me/care/calendar"+query, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 calendar, got %d body=%s", st, string(body))
	}

	var buckets []bucketDTO
	if err := json.Unmarshal(body, &buckets); err != nil {
		t.Fatalf("unmarshal calendar: %v body=%s", err, string(body))
	}
	return buckets
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
