package engine

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/services/asset"
	"github.com/luminet-io/luminet/internal/services/basestation"
	"github.com/luminet-io/luminet/internal/services/element"
	"github.com/luminet-io/luminet/internal/services/telecell"
	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
)

// Reply assembly. Every located message encodes its coordinate as either
// a populated Location or NoLocation set, never both and never neither.

func assembleLocation(loc *store.Location) (*lightingv1.Location, bool) {
	if loc == nil {
		return nil, true
	}
	return &lightingv1.Location{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}, false
}

func assembleAsset(d *asset.Detail) *lightingv1.Asset {
	loc, noLoc := assembleLocation(d.Asset.Location)
	return &lightingv1.Asset{
		Id:         d.Asset.ID,
		Status:     lightingv1.ActivityStatus(d.Asset.Status),
		Location:   loc,
		NoLocation: noLoc,
		ElementIds: d.ElementIDs,
	}
}

func assembleElement(d *element.Detail) *lightingv1.Element {
	el := &lightingv1.Element{
		Id:          d.Element.ID,
		Description: d.Element.Description,
		Status:      lightingv1.ActivityStatus(d.Element.Status),
		TelecellId:  d.Element.TelecellID,
	}
	if d.Asset != nil {
		el.Asset = assembleAsset(&asset.Detail{Asset: d.Asset, ElementIDs: d.AssetElementIDs})
	}
	return el
}

func assembleTelecell(d *telecell.Detail) *lightingv1.Telecell {
	loc, noLoc := assembleLocation(d.Telecell.Location)
	tc := &lightingv1.Telecell{
		Id:            d.Telecell.ID,
		Uuid:          d.Telecell.UUID,
		Relay:         d.Telecell.Relay,
		Status:        lightingv1.ActivityStatus(d.Telecell.Status),
		Location:      loc,
		NoLocation:    noLoc,
		BasestationId: d.Telecell.BasestationID,
		ElementIds:    d.ElementIDs,
	}
	if !d.Telecell.UpdatedAt.IsZero() {
		tc.UpdatedAt = timestamppb.New(d.Telecell.UpdatedAt)
	}
	if d.Basestation != nil {
		tc.Basestation = assembleBasestationRecord(d.Basestation, nil)
	}
	return tc
}

func assembleBasestation(d *basestation.Detail) *lightingv1.Basestation {
	return assembleBasestationRecord(d.Basestation, d.TelecellIDs)
}

func assembleBasestationRecord(bs *store.Basestation, telecellIDs []int64) *lightingv1.Basestation {
	loc, noLoc := assembleLocation(bs.Location)
	return &lightingv1.Basestation{
		Id:          bs.ID,
		Uuid:        bs.UUID,
		Version:     bs.Version,
		Status:      lightingv1.ActivityStatus(bs.Status),
		Location:    loc,
		NoLocation:  noLoc,
		TelecellIds: telecellIDs,
	}
}

func assembleUser(u *store.User) *lightingv1.User {
	return &lightingv1.User{
		Id:       u.ID,
		Username: u.Username,
		Role:     lightingv1.Role(u.Role),
		Created:  timestamppb.New(u.Created),
	}
}

// Request decoding.

func locationParam(loc *lightingv1.Location) *store.Location {
	if loc == nil {
		return nil
	}
	return &store.Location{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
}

func statusParam(st *lightingv1.ActivityStatus) *store.ActivityStatus {
	if st == nil {
		return nil
	}
	s := store.ActivityStatus(*st)
	return &s
}

func roleParam(r *lightingv1.Role) *store.Role {
	if r == nil {
		return nil
	}
	role := store.Role(*r)
	return &role
}

// corners extracts the two bounding box corners from a search request.
// Corner order does not matter; the box is normalized downstream.
func corners(rect *lightingv1.Rectangle) (spatial.Point, spatial.Point, error) {
	if rect == nil || rect.Lo == nil || rect.Hi == nil {
		return spatial.Point{}, spatial.Point{}, fmt.Errorf("rectangle with both corners is required: %w", store.ErrValidation)
	}
	a := spatial.Point{Latitude: rect.Lo.Latitude, Longitude: rect.Lo.Longitude}
	b := spatial.Point{Latitude: rect.Hi.Latitude, Longitude: rect.Hi.Longitude}
	return a, b, nil
}
