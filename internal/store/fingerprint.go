package store

import (
	"encoding/binary"
	"strconv"

	"github.com/MKhiriev/go-feed-sync/models"
	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable 64-bit hash of items. Two snapshots with the
// same rows in the same order hash equally; the journal stores it to tell
// syncs that left the collection untouched from ones that changed it.
func Fingerprint(items []models.Item) uint64 {
	h := &fingerprinter{d: xxhash.New()}
	for _, it := range items {
		it.Accept(h)
	}
	return h.d.Sum64()
}

// FingerprintHex is [Fingerprint] formatted for storage.
func FingerprintHex(items []models.Item) string {
	return strconv.FormatUint(Fingerprint(items), 16)
}

type fingerprinter struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (f *fingerprinter) VisitTitle(t models.Title) {
	f.tag(models.KindTitle)
	f.str(t.Text)
}

func (f *fingerprinter) VisitDescription(d models.Description) {
	f.tag(models.KindDescription)
	f.str(d.Text)
	f.str(d.SwitchActionID)
}

func (f *fingerprinter) VisitRecord(r models.Record) {
	f.tag(models.KindRecord)
	f.u64(uint64(r.ExternalID))
	f.str(r.Name)
	f.str(r.Status)
	f.str(r.Species)
	f.str(r.ImageRef)
}

func (f *fingerprinter) tag(k models.ItemKind) {
	_, _ = f.d.Write([]byte{byte(k)})
}

// strings are length-prefixed so ("ab","c") and ("a","bc") differ
func (f *fingerprinter) str(s string) {
	f.u64(uint64(len(s)))
	_, _ = f.d.WriteString(s)
}

func (f *fingerprinter) u64(v uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])
}
