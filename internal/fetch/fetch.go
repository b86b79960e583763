// Package fetch resolves bundle contents from a local bundle store and
// reports the lifecycle status of each lookup.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bundleboard/internal/shared"
)

// briefLimit is how many entries a brief peek returns before the
// listing is considered complete.
const briefLimit = 4

// Result is what a single peek produced. Summary holds a short listing
// of the bundle's top-level contents when Status is briefly_loaded or
// ready, empty otherwise.
type Result struct {
	UUID    string
	Status  shared.FetchStatus
	Summary string
}

// Peek looks up a bundle's content directory under storeDir and returns
// its fetch status along with a brief content summary. Missing contents
// map to not_found and permission failures to no_permission; any other
// I/O error is returned as an error with status unknown.
func Peek(ctx context.Context, storeDir, uuid string) (Result, error) {
	res := Result{UUID: uuid, Status: shared.FetchUnknown}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	dir := filepath.Join(storeDir, uuid)
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		res.Status = shared.FetchNotFound
		return res, nil
	case errors.Is(err, fs.ErrPermission):
		res.Status = shared.FetchNoPermission
		return res, nil
	case err != nil:
		return res, fmt.Errorf("stat bundle %s: %w", uuid, err)
	}

	if !info.IsDir() {
		// Single-file bundle: nothing more to list.
		res.Status = shared.FetchReady
		res.Summary = info.Name()
		return res, nil
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrPermission) {
		res.Status = shared.FetchNoPermission
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("list bundle %s: %w", uuid, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) > briefLimit {
		res.Status = shared.FetchBrieflyLoaded
		res.Summary = strings.Join(names[:briefLimit], " ") + " …"
		return res, nil
	}
	res.Status = shared.FetchReady
	res.Summary = strings.Join(names, " ")
	return res, nil
}
