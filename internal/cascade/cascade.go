// Package cascade implements the lifecycle cascades of the lighting
// graph as free functions over a store.Store. Callers are expected to
// run each cascade inside store.WithTx so a partial cascade is never
// visible.
package cascade

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/store"
)

// Result reports which related entities a cascade touched.
type Result struct {
	// ElementIDs are elements soft-deleted, pruned, or disassociated.
	ElementIDs []int64
	// TelecellIDs are telecells soft-deleted or disassociated.
	TelecellIDs []int64
}

var deleted = store.StatusDeleted

// SoftDeleteAsset marks the asset DELETED, then every element it owns,
// then every telecell associated with those elements. Nothing is
// removed. Deleting an already deleted asset is a no-op.
func SoftDeleteAsset(ctx context.Context, st store.Store, id int64) (*store.Asset, *Result, error) {
	asset, err := st.Assets().Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if asset.Status == store.StatusDeleted {
		return asset, &Result{}, nil
	}

	asset, err = st.Assets().Update(ctx, id, store.AssetUpdate{Status: &deleted})
	if err != nil {
		return nil, nil, err
	}

	els, err := st.Elements().ListByAsset(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	res := &Result{}
	seen := make(map[int64]bool)
	for _, el := range els {
		if _, err := st.Elements().Update(ctx, el.ID, store.ElementUpdate{Status: &deleted}); err != nil {
			return nil, nil, fmt.Errorf("cascade to element %d: %w", el.ID, err)
		}
		res.ElementIDs = append(res.ElementIDs, el.ID)
		if el.TelecellID == nil || seen[*el.TelecellID] {
			continue
		}
		seen[*el.TelecellID] = true
		if _, err := st.Telecells().Update(ctx, *el.TelecellID, store.TelecellUpdate{Status: &deleted}); err != nil {
			return nil, nil, fmt.Errorf("cascade to telecell %d: %w", *el.TelecellID, err)
		}
		res.TelecellIDs = append(res.TelecellIDs, *el.TelecellID)
	}
	return asset, res, nil
}

// SoftDeleteElement marks the element DELETED. The owning asset and any
// associated telecell are untouched.
func SoftDeleteElement(ctx context.Context, st store.Store, id int64) (*store.Element, error) {
	el, err := st.Elements().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if el.Status == store.StatusDeleted {
		return el, nil
	}
	return st.Elements().Update(ctx, id, store.ElementUpdate{Status: &deleted})
}

// SoftDeleteTelecell marks the telecell DELETED. Associated elements
// keep their reference and their status.
func SoftDeleteTelecell(ctx context.Context, st store.Store, id int64) (*store.Telecell, error) {
	tc, err := st.Telecells().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tc.Status == store.StatusDeleted {
		return tc, nil
	}
	return st.Telecells().Update(ctx, id, store.TelecellUpdate{Status: &deleted})
}

// SoftDeleteBasestation marks the basestation DELETED. Associated
// telecells are untouched.
func SoftDeleteBasestation(ctx context.Context, st store.Store, id int64) (*store.Basestation, error) {
	bs, err := st.Basestations().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if bs.Status == store.StatusDeleted {
		return bs, nil
	}
	return st.Basestations().Update(ctx, id, store.BasestationUpdate{Status: &deleted})
}

// PruneAsset removes the asset and every element it owns. Telecells
// referenced by those elements persist and keep their own state.
func PruneAsset(ctx context.Context, st store.Store, id int64) (*Result, error) {
	if _, err := st.Assets().Get(ctx, id); err != nil {
		return nil, err
	}
	els, err := st.Elements().ListByAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, el := range els {
		if err := st.Elements().Delete(ctx, el.ID); err != nil {
			return nil, fmt.Errorf("prune element %d: %w", el.ID, err)
		}
		res.ElementIDs = append(res.ElementIDs, el.ID)
	}
	if err := st.Assets().Delete(ctx, id); err != nil {
		return nil, err
	}
	return res, nil
}

// PruneElement removes the element row.
func PruneElement(ctx context.Context, st store.Store, id int64) error {
	return st.Elements().Delete(ctx, id)
}

// PruneTelecell clears the telecell reference on every associated
// element, then removes the telecell. The elements persist.
func PruneTelecell(ctx context.Context, st store.Store, id int64) (*Result, error) {
	if _, err := st.Telecells().Get(ctx, id); err != nil {
		return nil, err
	}
	els, err := st.Elements().ListByTelecell(ctx, id)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, el := range els {
		if _, err := st.Elements().Update(ctx, el.ID, store.ElementUpdate{ClearTelecell: true}); err != nil {
			return nil, fmt.Errorf("clear element %d: %w", el.ID, err)
		}
		res.ElementIDs = append(res.ElementIDs, el.ID)
	}
	if err := st.Telecells().Delete(ctx, id); err != nil {
		return nil, err
	}
	return res, nil
}

// PruneBasestation clears the basestation reference on every associated
// telecell, then removes the basestation. The telecells persist.
func PruneBasestation(ctx context.Context, st store.Store, id int64) (*Result, error) {
	if _, err := st.Basestations().Get(ctx, id); err != nil {
		return nil, err
	}
	tcs, err := st.Telecells().ListByBasestation(ctx, id)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, tc := range tcs {
		if _, err := st.Telecells().Update(ctx, tc.ID, store.TelecellUpdate{ClearBasestation: true}); err != nil {
			return nil, fmt.Errorf("clear telecell %d: %w", tc.ID, err)
		}
		res.TelecellIDs = append(res.TelecellIDs, tc.ID)
	}
	if err := st.Basestations().Delete(ctx, id); err != nil {
		return nil, err
	}
	return res, nil
}
