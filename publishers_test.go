// Copyright (c) 2024-2025 Neomantra Corp

package bf_test

import (
	"encoding/json"
	"testing"

	"github.com/quantbin/bf-go"
)

///////////////////////////////////////////////////////////////////////////////
// Venue Tests

func TestVenue_Values(t *testing.T) {
	tests := []struct {
		venue bf.Venue
		want  uint16
		str   string
	}{
		{bf.Venue_Glbx, 1, "GLBX"},
		{bf.Venue_Xnas, 2, "XNAS"},
		{bf.Venue_Xnys, 9, "XNYS"},
		{bf.Venue_Equs, 47, "EQUS"},
		{bf.Venue_Ifus, 48, "IFUS"},
		{bf.Venue_Xcbf, 52, "XCBF"},
		{bf.Venue_Ocea, 53, "OCEA"},
	}

	for _, tt := range tests {
		if uint16(tt.venue) != tt.want {
			t.Errorf("Venue %d: got %d, want %d", tt.venue, uint16(tt.venue), tt.want)
		}
		if got := tt.venue.String(); got != tt.str {
			t.Errorf("Venue.String() %d: got %q, want %q", tt.venue, got, tt.str)
		}
	}
}

func TestVenueFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bf.Venue
	}{
		{"GLBX", bf.Venue_Glbx},
		{"glbx", bf.Venue_Glbx},
		{"XNAS", bf.Venue_Xnas},
		{"xnas", bf.Venue_Xnas},
		{"EQUS", bf.Venue_Equs},
		{"IFUS", bf.Venue_Ifus},
		{"XCBF", bf.Venue_Xcbf},
		{"OCEA", bf.Venue_Ocea},
	}

	for _, tt := range tests {
		got, err := bf.VenueFromString(tt.input)
		if err != nil {
			t.Errorf("VenueFromString(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("VenueFromString(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestVenueFromString_Invalid(t *testing.T) {
	_, err := bf.VenueFromString("INVALID")
	if err == nil {
		t.Error("VenueFromString(\"INVALID\"): expected error, got nil")
	}
}

func TestVenue_JSON(t *testing.T) {
	venue := bf.Venue_Xnas
	data, err := json.Marshal(venue)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(data) != `"XNAS"` {
		t.Errorf("json.Marshal: got %s, want \"XNAS\"", string(data))
	}

	var decoded bf.Venue
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded != venue {
		t.Errorf("json.Unmarshal: got %v, want %v", decoded, venue)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Dataset Tests

func TestDataset_Values(t *testing.T) {
	tests := []struct {
		dataset bf.Dataset
		want    uint16
		str     string
	}{
		{bf.Dataset_GlbxMdp3, 1, "GLBX.MDP3"},
		{bf.Dataset_XnasItch, 2, "XNAS.ITCH"},
		{bf.Dataset_EqusMini, 35, "EQUS.MINI"},
		{bf.Dataset_IfusImpact, 36, "IFUS.IMPACT"},
		{bf.Dataset_XcbfPitch, 40, "XCBF.PITCH"},
		{bf.Dataset_OceaMemoir, 41, "OCEA.MEMOIR"},
	}

	for _, tt := range tests {
		if uint16(tt.dataset) != tt.want {
			t.Errorf("Dataset %d: got %d, want %d", tt.dataset, uint16(tt.dataset), tt.want)
		}
		if got := tt.dataset.String(); got != tt.str {
			t.Errorf("Dataset.String() %d: got %q, want %q", tt.dataset, got, tt.str)
		}
	}
}

func TestDatasetFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bf.Dataset
	}{
		{"GLBX.MDP3", bf.Dataset_GlbxMdp3},
		{"glbx.mdp3", bf.Dataset_GlbxMdp3},
		{"XNAS.ITCH", bf.Dataset_XnasItch},
		{"EQUS.MINI", bf.Dataset_EqusMini},
		{"IFUS.IMPACT", bf.Dataset_IfusImpact},
		{"XCBF.PITCH", bf.Dataset_XcbfPitch},
		{"OCEA.MEMOIR", bf.Dataset_OceaMemoir},
	}

	for _, tt := range tests {
		got, err := bf.DatasetFromString(tt.input)
		if err != nil {
			t.Errorf("DatasetFromString(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DatasetFromString(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDataset_Publishers(t *testing.T) {
	// Test single publisher dataset
	pubs := bf.Dataset_GlbxMdp3.Publishers()
	if len(pubs) != 1 || pubs[0] != bf.Publisher_GlbxMdp3Glbx {
		t.Errorf("Dataset_GlbxMdp3.Publishers(): got %v, want [Publisher_GlbxMdp3Glbx]", pubs)
	}

	// Test multi-publisher dataset
	pubs = bf.Dataset_OpraPillar.Publishers()
	if len(pubs) != 19 {
		t.Errorf("Dataset_OpraPillar.Publishers(): got %d publishers, want 19", len(pubs))
	}

	// Test deprecated dataset
	pubs = bf.Dataset_FinnNls.Publishers()
	if len(pubs) != 0 {
		t.Errorf("Dataset_FinnNls.Publishers(): got %d publishers, want 0 (deprecated)", len(pubs))
	}
}

func TestDataset_JSON(t *testing.T) {
	dataset := bf.Dataset_EqusMini
	data, err := json.Marshal(dataset)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(data) != `"EQUS.MINI"` {
		t.Errorf("json.Marshal: got %s, want \"EQUS.MINI\"", string(data))
	}

	var decoded bf.Dataset
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded != dataset {
		t.Errorf("json.Unmarshal: got %v, want %v", decoded, dataset)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Publisher Tests

func TestPublisher_Values(t *testing.T) {
	tests := []struct {
		publisher bf.Publisher
		want      uint16
		str       string
	}{
		{bf.Publisher_GlbxMdp3Glbx, 1, "GLBX.MDP3.GLBX"},
		{bf.Publisher_XnasItchXnas, 2, "XNAS.ITCH.XNAS"},
		{bf.Publisher_EqusMiniEqus, 95, "EQUS.MINI.EQUS"},
		{bf.Publisher_IfusImpactIfus, 97, "IFUS.IMPACT.IFUS"},
		{bf.Publisher_OceaMemoirOcea, 107, "OCEA.MEMOIR.OCEA"},
	}

	for _, tt := range tests {
		if uint16(tt.publisher) != tt.want {
			t.Errorf("Publisher %d: got %d, want %d", tt.publisher, uint16(tt.publisher), tt.want)
		}
		if got := tt.publisher.String(); got != tt.str {
			t.Errorf("Publisher.String() %d: got %q, want %q", tt.publisher, got, tt.str)
		}
	}
}

func TestPublisher_Venue(t *testing.T) {
	tests := []struct {
		publisher bf.Publisher
		want      bf.Venue
	}{
		{bf.Publisher_GlbxMdp3Glbx, bf.Venue_Glbx},
		{bf.Publisher_XnasItchXnas, bf.Venue_Xnas},
		{bf.Publisher_EqusMiniEqus, bf.Venue_Equs},
		{bf.Publisher_IfusImpactIfus, bf.Venue_Ifus},
		{bf.Publisher_IfusImpactXoff, bf.Venue_Xoff},
		{bf.Publisher_OceaMemoirOcea, bf.Venue_Ocea},
	}

	for _, tt := range tests {
		if got := tt.publisher.Venue(); got != tt.want {
			t.Errorf("Publisher(%d).Venue(): got %v, want %v", tt.publisher, got, tt.want)
		}
	}
}

func TestPublisher_Dataset(t *testing.T) {
	tests := []struct {
		publisher bf.Publisher
		want      bf.Dataset
	}{
		{bf.Publisher_GlbxMdp3Glbx, bf.Dataset_GlbxMdp3},
		{bf.Publisher_XnasItchXnas, bf.Dataset_XnasItch},
		{bf.Publisher_EqusMiniEqus, bf.Dataset_EqusMini},
		{bf.Publisher_IfusImpactIfus, bf.Dataset_IfusImpact},
		{bf.Publisher_XcbfPitchXcbf, bf.Dataset_XcbfPitch},
		{bf.Publisher_OceaMemoirOcea, bf.Dataset_OceaMemoir},
	}

	for _, tt := range tests {
		if got := tt.publisher.Dataset(); got != tt.want {
			t.Errorf("Publisher(%d).Dataset(): got %v, want %v", tt.publisher, got, tt.want)
		}
	}
}

func TestPublisherFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bf.Publisher
	}{
		{"GLBX.MDP3.GLBX", bf.Publisher_GlbxMdp3Glbx},
		{"glbx.mdp3.glbx", bf.Publisher_GlbxMdp3Glbx},
		{"XNAS.ITCH.XNAS", bf.Publisher_XnasItchXnas},
		{"EQUS.MINI.EQUS", bf.Publisher_EqusMiniEqus},
		{"IFUS.IMPACT.IFUS", bf.Publisher_IfusImpactIfus},
		{"XCBF.PITCH.XCBF", bf.Publisher_XcbfPitchXcbf},
		{"OCEA.MEMOIR.OCEA", bf.Publisher_OceaMemoirOcea},
	}

	for _, tt := range tests {
		got, err := bf.PublisherFromString(tt.input)
		if err != nil {
			t.Errorf("PublisherFromString(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PublisherFromString(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPublisherFromString_Invalid(t *testing.T) {
	_, err := bf.PublisherFromString("INVALID.PUB")
	if err == nil {
		t.Error("PublisherFromString(\"INVALID.PUB\"): expected error, got nil")
	}
}

func TestPublisherFromDatasetVenue(t *testing.T) {
	tests := []struct {
		dataset bf.Dataset
		venue   bf.Venue
		want    bf.Publisher
	}{
		{bf.Dataset_GlbxMdp3, bf.Venue_Glbx, bf.Publisher_GlbxMdp3Glbx},
		{bf.Dataset_XnasItch, bf.Venue_Xnas, bf.Publisher_XnasItchXnas},
		{bf.Dataset_EqusMini, bf.Venue_Equs, bf.Publisher_EqusMiniEqus},
		{bf.Dataset_IfusImpact, bf.Venue_Ifus, bf.Publisher_IfusImpactIfus},
		{bf.Dataset_IfusImpact, bf.Venue_Xoff, bf.Publisher_IfusImpactXoff},
		{bf.Dataset_OceaMemoir, bf.Venue_Ocea, bf.Publisher_OceaMemoirOcea},
	}

	for _, tt := range tests {
		got, err := bf.PublisherFromDatasetVenue(tt.dataset, tt.venue)
		if err != nil {
			t.Errorf("PublisherFromDatasetVenue(%s, %s): unexpected error: %v",
				tt.dataset.String(), tt.venue.String(), err)
			continue
		}
		if got != tt.want {
			t.Errorf("PublisherFromDatasetVenue(%s, %s): got %v, want %v",
				tt.dataset.String(), tt.venue.String(), got, tt.want)
		}
	}
}

func TestPublisherFromDatasetVenue_Invalid(t *testing.T) {
	// Invalid combination
	_, err := bf.PublisherFromDatasetVenue(bf.Dataset_GlbxMdp3, bf.Venue_Xnas)
	if err == nil {
		t.Error("PublisherFromDatasetVenue(GLBX.MDP3, XNAS): expected error, got nil")
	}
}

func TestPublisher_JSON(t *testing.T) {
	publisher := bf.Publisher_OceaMemoirOcea
	data, err := json.Marshal(publisher)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(data) != `"OCEA.MEMOIR.OCEA"` {
		t.Errorf("json.Marshal: got %s, want \"OCEA.MEMOIR.OCEA\"", string(data))
	}

	var decoded bf.Publisher
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded != publisher {
		t.Errorf("json.Unmarshal: got %v, want %v", decoded, publisher)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Count Constants

func TestCounts(t *testing.T) {
	if bf.VENUE_COUNT != 53 {
		t.Errorf("VENUE_COUNT: got %d, want 53", bf.VENUE_COUNT)
	}
	if bf.DATASET_COUNT != 41 {
		t.Errorf("DATASET_COUNT: got %d, want 41", bf.DATASET_COUNT)
	}
	if bf.PUBLISHER_COUNT != 107 {
		t.Errorf("PUBLISHER_COUNT: got %d, want 107", bf.PUBLISHER_COUNT)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Round-trip Tests

func TestVenue_RoundTrip(t *testing.T) {
	// Test that all valid venues can be converted to string and back
	venues := []bf.Venue{
		bf.Venue_Glbx, bf.Venue_Xnas, bf.Venue_Xnys,
		bf.Venue_Equs, bf.Venue_Ifus, bf.Venue_Xcbf, bf.Venue_Ocea,
	}

	for _, v := range venues {
		str := v.String()
		got, err := bf.VenueFromString(str)
		if err != nil {
			t.Errorf("Venue %d round-trip: error: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("Venue %d round-trip: got %d, want %d", v, got, v)
		}
	}
}

func TestDataset_RoundTrip(t *testing.T) {
	datasets := []bf.Dataset{
		bf.Dataset_GlbxMdp3, bf.Dataset_XnasItch, bf.Dataset_EqusMini,
		bf.Dataset_IfusImpact, bf.Dataset_XcbfPitch, bf.Dataset_OceaMemoir,
	}

	for _, d := range datasets {
		str := d.String()
		got, err := bf.DatasetFromString(str)
		if err != nil {
			t.Errorf("Dataset %d round-trip: error: %v", d, err)
			continue
		}
		if got != d {
			t.Errorf("Dataset %d round-trip: got %d, want %d", d, got, d)
		}
	}
}

func TestPublisher_RoundTrip(t *testing.T) {
	publishers := []bf.Publisher{
		bf.Publisher_GlbxMdp3Glbx, bf.Publisher_XnasItchXnas,
		bf.Publisher_EqusMiniEqus, bf.Publisher_IfusImpactIfus,
		bf.Publisher_XcbfPitchXcbf, bf.Publisher_OceaMemoirOcea,
	}

	for _, p := range publishers {
		str := p.String()
		got, err := bf.PublisherFromString(str)
		if err != nil {
			t.Errorf("Publisher %d round-trip: error: %v", p, err)
			continue
		}
		if got != p {
			t.Errorf("Publisher %d round-trip: got %d, want %d", p, got, p)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// Consistency Tests

func TestPublisher_Consistency(t *testing.T) {
	// Test that Publisher.Venue() and Publisher.Dataset() are consistent
	// with PublisherFromDatasetVenue
	publishers := []bf.Publisher{
		bf.Publisher_GlbxMdp3Glbx,
		bf.Publisher_XnasItchXnas,
		bf.Publisher_EqusMiniEqus,
		bf.Publisher_IfusImpactIfus,
		bf.Publisher_IfusImpactXoff,
		bf.Publisher_OceaMemoirOcea,
	}

	for _, p := range publishers {
		dataset := p.Dataset()
		venue := p.Venue()

		got, err := bf.PublisherFromDatasetVenue(dataset, venue)
		if err != nil {
			t.Errorf("Publisher %d consistency: PublisherFromDatasetVenue error: %v", p, err)
			continue
		}
		if got != p {
			t.Errorf("Publisher %d consistency: got %d, want %d", p, got, p)
		}
	}
}

func TestDataset_Publishers_Consistency(t *testing.T) {
	// Test that all publishers returned by Dataset.Publishers() have the correct Dataset
	datasets := []bf.Dataset{
		bf.Dataset_GlbxMdp3,
		bf.Dataset_XnasItch,
		bf.Dataset_EqusMini,
		bf.Dataset_IfusImpact,
		bf.Dataset_OceaMemoir,
	}

	for _, d := range datasets {
		for _, p := range d.Publishers() {
			if p.Dataset() != d {
				t.Errorf("Dataset %s: Publisher %s has wrong Dataset %s",
					d.String(), p.String(), p.Dataset().String())
			}
		}
	}
}
