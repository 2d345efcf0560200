package httpserver

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	catalogtransport "cantina/contexts/catalog/drink-service/transport/http"
)

func decodeInto(t *testing.T, body []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response %s: %v", body, err)
	}
}

func requireEnvelope(t *testing.T, body []byte, status int, gotStatus int) catalogtransport.ErrorResponse {
	t.Helper()

	if gotStatus != status {
		t.Fatalf("expected status %d, got %d body=%s", status, gotStatus, body)
	}
	var envelope catalogtransport.ErrorResponse
	decodeInto(t, body, &envelope)
	if envelope.Success {
		t.Fatalf("expected success=false envelope, got %s", body)
	}
	if envelope.Error != status {
		t.Fatalf("expected error=%d in envelope, got %s", status, body)
	}
	return envelope
}

func TestListItemsRequiresAuthorizationHeader(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/items", "", "")
	requireEnvelope(t, rr.Body.Bytes(), http.StatusUnauthorized, rr.Code)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/items", env.expiredToken(t, "get:items"), "")
	requireEnvelope(t, rr.Body.Bytes(), http.StatusUnauthorized, rr.Code)
}

func TestMutationWithoutScopeNeverReachesStore(t *testing.T) {
	env := newTestEnv(t)

	body := `{"title":"Water","recipe":{"color":"blue","parts":1}}`
	rr := env.do(t, http.MethodPost, "/items", env.token(t, "get:items"), body)
	requireEnvelope(t, rr.Body.Bytes(), http.StatusUnauthorized, rr.Code)

	if env.store.Count() != 0 {
		t.Fatalf("expected store untouched after rejected request, got %d drinks", env.store.Count())
	}
}

func TestCreateReturnsLongProjectionWithNullName(t *testing.T) {
	env := newTestEnv(t)

	body := `{"title":"Water","recipe":{"color":"blue","parts":1}}`
	rr := env.do(t, http.MethodPost, "/items", env.token(t, "post:items"), body)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp catalogtransport.MutationResponse
	decodeInto(t, rr.Body.Bytes(), &resp)
	if !resp.Success || len(resp.Items) != 1 {
		t.Fatalf("expected one created item, got %s", rr.Body.String())
	}
	created := resp.Items[0]
	if created.ID == 0 || created.Title != "Water" {
		t.Fatalf("unexpected created item %+v", created)
	}
	if len(created.Recipe) != 1 || created.Recipe[0].Name != nil {
		t.Fatalf("expected single recipe entry with null name, got %+v", created.Recipe)
	}

	// The raw payload must carry the name key explicitly.
	var rawResp struct {
		Items []struct {
			Recipe []map[string]any `json:"recipe"`
		} `json:"items"`
	}
	decodeInto(t, rr.Body.Bytes(), &rawResp)
	if _, ok := rawResp.Items[0].Recipe[0]["name"]; !ok {
		t.Fatalf("expected name key in long projection, got %s", rr.Body.String())
	}
}

func TestRecipeObjectAndListInputsStoreIdentically(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "post:items", "get:items-detail")

	first := env.do(t, http.MethodPost, "/items", token, `{"title":"A","recipe":{"name":"rum","color":"amber","parts":2}}`)
	if first.Code != http.StatusOK {
		t.Fatalf("object-form create failed: %s", first.Body.String())
	}
	second := env.do(t, http.MethodPost, "/items", token, `{"title":"B","recipe":[{"name":"rum","color":"amber","parts":2}]}`)
	if second.Code != http.StatusOK {
		t.Fatalf("list-form create failed: %s", second.Body.String())
	}

	rr := env.do(t, http.MethodGet, "/items-detail", token, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("detail list failed: %s", rr.Body.String())
	}
	var resp catalogtransport.ListDrinksDetailResponse
	decodeInto(t, rr.Body.Bytes(), &resp)
	if len(resp.Items) != 2 {
		t.Fatalf("expected two items, got %s", rr.Body.String())
	}
	if !reflect.DeepEqual(resp.Items[0].Recipe, resp.Items[1].Recipe) {
		t.Fatalf("expected identical recipes, got %+v and %+v", resp.Items[0].Recipe, resp.Items[1].Recipe)
	}
}

func TestSummaryListingOmitsIngredientNames(t *testing.T) {
	env := newTestEnv(t)

	create := env.do(t, http.MethodPost, "/items", env.token(t, "post:items"),
		`{"title":"Mojito","recipe":[{"name":"rum","color":"clear","parts":2},{"name":"mint","color":"green","parts":1}]}`)
	if create.Code != http.StatusOK {
		t.Fatalf("create failed: %s", create.Body.String())
	}

	rr := env.do(t, http.MethodGet, "/items", env.token(t, "get:items"), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list failed: %s", rr.Body.String())
	}

	var rawResp struct {
		Success bool `json:"success"`
		Items   []struct {
			Recipe []map[string]any `json:"recipe"`
		} `json:"items"`
	}
	decodeInto(t, rr.Body.Bytes(), &rawResp)
	if !rawResp.Success || len(rawResp.Items) != 1 {
		t.Fatalf("expected one summary item, got %s", rr.Body.String())
	}
	for _, entry := range rawResp.Items[0].Recipe {
		if _, ok := entry["name"]; ok {
			t.Fatalf("summary projection leaked ingredient name: %s", rr.Body.String())
		}
	}
}

func TestDuplicateTitleCreateFailsAndKeepsFirst(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "post:items")

	first := env.do(t, http.MethodPost, "/items", token, `{"title":"Cola","recipe":{"color":"brown","parts":1}}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first create failed: %s", first.Body.String())
	}

	second := env.do(t, http.MethodPost, "/items", token, `{"title":"Cola","recipe":{"color":"black","parts":2}}`)
	requireEnvelope(t, second.Body.Bytes(), http.StatusBadRequest, second.Code)

	if env.store.Count() != 1 {
		t.Fatalf("expected one stored drink, got %d", env.store.Count())
	}
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "post:items")

	cases := []string{
		`not json`,
		`{"title":"","recipe":{"color":"blue","parts":1}}`,
		`{"title":"No Recipe"}`,
		`{"title":"Scalar","recipe":7}`,
	}
	for _, body := range cases {
		rr := env.do(t, http.MethodPost, "/items", token, body)
		requireEnvelope(t, rr.Body.Bytes(), http.StatusBadRequest, rr.Code)
	}
	if env.store.Count() != 0 {
		t.Fatalf("expected nothing stored, got %d", env.store.Count())
	}
}

func TestPatchUpdatesOnlyProvidedFields(t *testing.T) {
	env := newTestEnv(t)

	create := env.do(t, http.MethodPost, "/items", env.token(t, "post:items"),
		`{"title":"Latte","recipe":[{"name":"espresso","color":"brown","parts":1},{"name":"milk","color":"white","parts":3}]}`)
	if create.Code != http.StatusOK {
		t.Fatalf("create failed: %s", create.Body.String())
	}
	var created catalogtransport.MutationResponse
	decodeInto(t, create.Body.Bytes(), &created)
	id := created.Items[0].ID

	patch := env.do(t, http.MethodPatch, "/items/1", env.token(t, "patch:items"), `{"title":"Oat Latte"}`)
	if patch.Code != http.StatusOK {
		t.Fatalf("patch failed: %s", patch.Body.String())
	}
	var updated catalogtransport.MutationResponse
	decodeInto(t, patch.Body.Bytes(), &updated)
	if updated.Items[0].ID != id || updated.Items[0].Title != "Oat Latte" {
		t.Fatalf("unexpected updated item %+v", updated.Items[0])
	}
	if !reflect.DeepEqual(updated.Items[0].Recipe, created.Items[0].Recipe) {
		t.Fatalf("expected recipe untouched, got %+v want %+v", updated.Items[0].Recipe, created.Items[0].Recipe)
	}
}

func TestPatchEmptyBodyIsANoOp(t *testing.T) {
	env := newTestEnv(t)

	create := env.do(t, http.MethodPost, "/items", env.token(t, "post:items"),
		`{"title":"Chai","recipe":{"name":"chai","color":"brown","parts":2}}`)
	if create.Code != http.StatusOK {
		t.Fatalf("create failed: %s", create.Body.String())
	}
	var created catalogtransport.MutationResponse
	decodeInto(t, create.Body.Bytes(), &created)

	patch := env.do(t, http.MethodPatch, "/items/1", env.token(t, "patch:items"), `{}`)
	if patch.Code != http.StatusOK {
		t.Fatalf("empty patch failed: %s", patch.Body.String())
	}
	var updated catalogtransport.MutationResponse
	decodeInto(t, patch.Body.Bytes(), &updated)
	if !reflect.DeepEqual(updated.Items, created.Items) {
		t.Fatalf("expected unchanged entity, got %+v want %+v", updated.Items, created.Items)
	}
}

func TestPatchUnknownIDReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPatch, "/items/99", env.token(t, "patch:items"), `{"title":"Ghost"}`)
	requireEnvelope(t, rr.Body.Bytes(), http.StatusNotFound, rr.Code)
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodDelete, "/items/99", env.token(t, "delete:items"), "")
	requireEnvelope(t, rr.Body.Bytes(), http.StatusNotFound, rr.Code)
}

func TestDeleteRemovesItemFromBothListings(t *testing.T) {
	env := newTestEnv(t)

	create := env.do(t, http.MethodPost, "/items", env.token(t, "post:items"),
		`{"title":"Negroni","recipe":{"name":"gin","color":"red","parts":1}}`)
	if create.Code != http.StatusOK {
		t.Fatalf("create failed: %s", create.Body.String())
	}

	del := env.do(t, http.MethodDelete, "/items/1", env.token(t, "delete:items"), "")
	if del.Code != http.StatusOK {
		t.Fatalf("delete failed: %s", del.Body.String())
	}
	var deleted catalogtransport.DeleteDrinkResponse
	decodeInto(t, del.Body.Bytes(), &deleted)
	if !deleted.Success || deleted.DeletedID != 1 {
		t.Fatalf("unexpected delete response %s", del.Body.String())
	}

	summary := env.do(t, http.MethodGet, "/items", env.token(t, "get:items"), "")
	var summaryResp catalogtransport.ListDrinksResponse
	decodeInto(t, summary.Body.Bytes(), &summaryResp)
	if len(summaryResp.Items) != 0 {
		t.Fatalf("expected empty summary listing, got %s", summary.Body.String())
	}

	detail := env.do(t, http.MethodGet, "/items-detail", env.token(t, "get:items-detail"), "")
	var detailResp catalogtransport.ListDrinksDetailResponse
	decodeInto(t, detail.Body.Bytes(), &detailResp)
	if len(detailResp.Items) != 0 {
		t.Fatalf("expected empty detail listing, got %s", detail.Body.String())
	}
}

func TestMethodNotAllowedUsesJSONEnvelope(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPut, "/items", env.token(t, "post:items"), `{}`)
	requireEnvelope(t, rr.Body.Bytes(), http.StatusMethodNotAllowed, rr.Code)

	rr = env.do(t, http.MethodPost, "/items-detail", env.token(t, "get:items-detail"), `{}`)
	requireEnvelope(t, rr.Body.Bytes(), http.StatusMethodNotAllowed, rr.Code)
}

func TestUnknownPathReturnsNotFoundEnvelope(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/nope", "", "")
	requireEnvelope(t, rr.Body.Bytes(), http.StatusNotFound, rr.Code)
}
