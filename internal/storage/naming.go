package storage

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"campusdocs/internal/model"
)

// Stamper hands out millisecond timestamps that strictly increase within the
// process, so two renders finishing in the same millisecond still get distinct
// file names.
type Stamper struct {
	last atomic.Int64
	now  func() time.Time
}

// NewStamper returns a Stamper on the wall clock.
func NewStamper() *Stamper {
	return &Stamper{now: time.Now}
}

// Next returns max(now in ms, previous+1).
func (s *Stamper) Next() int64 {
	ms := s.now().UnixMilli()
	for {
		last := s.last.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

const maxSlugLen = 48

// Slug lowercases the parts and joins their alphanumeric runs with dashes.
func Slug(parts ...string) string {
	var b strings.Builder
	dash := false
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				if dash && b.Len() > 0 {
					b.WriteByte('-')
				}
				b.WriteRune(r)
				dash = false
				continue
			}
			dash = true
		}
		dash = true
	}
	s := b.String()
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

// Directory prefixes of the public static tree.
const (
	CertificatesDir = "certificates"
	IDCardsDir      = "uploads/idCards"
	InvitationsDir  = "invitation"
)

// KeyFor builds the storage key of a freshly rendered document.
func KeyFor(kind model.Kind, stamp int64, slug string) string {
	ts := strconv.FormatInt(stamp, 10)
	switch kind {
	case model.KindIDCard:
		if slug == "" {
			slug = "card"
		}
		return IDCardsDir + "/" + ts + "-" + slug + ".png"
	case model.KindInvitation:
		return InvitationsDir + "/" + ts + "_invitation.png"
	default:
		return CertificatesDir + "/certificate-" + ts + ".png"
	}
}
