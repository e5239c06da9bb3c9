package tibber

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/icodeforyou/tibberprice/types/maybe"
)

const viewerNameQuery = `{ viewer { name } }`

type userViewer struct {
	Name string `json:"name"`
}

// GetViewerName returns the name of the account owning the api token.
func (t *Tibber) GetViewerName(ctx context.Context) (maybe.Maybe[string], error) {
	body, err := t.doQuery(ctx, viewerNameQuery)
	if err != nil {
		return maybe.None[string](), err
	}

	if err := requireViewerName(body); err != nil {
		t.logParseFailure(err, body)
		return maybe.None[string](), nil
	}

	res := new(queryResponse[userViewer])
	if err := json.Unmarshal(body, res); err != nil {
		t.logParseFailure(fmt.Errorf("failed to decode viewer: %w", err), body)
		return maybe.None[string](), nil
	}

	return maybe.Some(res.Data.Viewer.Name), nil
}
