package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nibashhq/marketplace-api/internal/entity"
)

type stubPool struct {
	execSQL  string
	execArgs []any
	execTag  pgconn.CommandTag
	execErr  error

	queryRowFn func(sql string, args []any) pgx.Row
}

func (s *stubPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if s.queryRowFn != nil {
		return s.queryRowFn(sql, args)
	}
	return errRow{err: errors.New("not implemented")}
}

func (s *stubPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.execSQL = sql
	s.execArgs = args
	return s.execTag, s.execErr
}

type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error { return r.err }

// stubVendorRow fills a full profile projection.
type stubVendorRow struct {
	rawLocs *string
	rawDocs *string
}

func (r stubVendorRow) Scan(dest ...any) error {
	phone := "+8801712345678"
	location := "Dhaka"
	now := time.Now()

	*dest[0].(*int64) = 7          // vendor_id
	*dest[1].(*string) = "Acme"    // vendor_name
	*dest[2].(*string) = "a@b.com" // vendor_email
	*dest[3].(*string) = "hash"    // password_hash
	*dest[4].(**string) = &phone
	*dest[5].(**string) = &location
	*dest[6].(**float64) = nil // latitude
	*dest[7].(**float64) = nil // longitude
	*dest[8].(**string) = nil  // logo_url
	*dest[9].(*string) = entity.VendorTypeSeller
	*dest[10].(**float64) = nil // rating
	*dest[11].(**string) = nil  // job_type
	*dest[12].(**string) = nil  // vendor_description
	*dest[13].(**string) = nil  // whatsapp_link
	*dest[14].(*int) = 5        // service_radius_km
	*dest[15].(**string) = nil  // visiting_card_url
	*dest[16].(**string) = nil  // shop_address
	*dest[17].(**string) = r.rawLocs
	*dest[18].(*string) = entity.VerificationNone
	*dest[19].(**time.Time) = &now
	*dest[20].(**string) = r.rawDocs
	return nil
}

func TestGetProfile_MalformedServiceLocations(t *testing.T) {
	malformed := `{"not": "a list"`
	pool := &stubPool{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return stubVendorRow{rawLocs: &malformed}
		},
	}
	repo := &PGXVendorsRepository{pool: pool}

	vendor, err := repo.GetProfile(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.ServiceLocations == nil || len(vendor.ServiceLocations) != 0 {
		t.Fatalf("malformed service_locations must decode to an empty list, got %v", vendor.ServiceLocations)
	}
}

func TestGetProfile_DecodesDocuments(t *testing.T) {
	docs := `{"nid_no":"12345","live_photo_url":null,"trade_license_id":null,"training_certificate":null}`
	pool := &stubPool{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return stubVendorRow{rawDocs: &docs}
		},
	}
	repo := &PGXVendorsRepository{pool: pool}

	vendor, err := repo.GetProfile(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.VerificationDocuments == nil || vendor.VerificationDocuments.NIDNo == nil || *vendor.VerificationDocuments.NIDNo != "12345" {
		t.Fatalf("unexpected documents: %+v", vendor.VerificationDocuments)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	pool := &stubPool{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return errRow{err: pgx.ErrNoRows}
		},
	}
	repo := &PGXVendorsRepository{pool: pool}

	if _, err := repo.GetProfile(context.Background(), 404); !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestUpdateProfile_BuildsFullSetClause(t *testing.T) {
	pool := &stubPool{execTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := &PGXVendorsRepository{pool: pool}

	err := repo.UpdateProfile(context.Background(), 7, VendorProfileUpdate{
		CompanyName:     "Acme",
		Email:           "a@b.com",
		Phone:           "123",
		Location:        "Dhaka",
		ServiceRadiusKm: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, col := range []string{"vendor_name = $1", "vendor_email = $2", "phone = $3", "location = $4", "service_locations = $14"} {
		if !strings.Contains(pool.execSQL, col) {
			t.Fatalf("expected %q in query:\n%s", col, pool.execSQL)
		}
	}
	if !strings.Contains(pool.execSQL, "WHERE vendor_id = $15") {
		t.Fatalf("expected vendor id as final placeholder:\n%s", pool.execSQL)
	}
	if len(pool.execArgs) != 15 {
		t.Fatalf("expected 15 args, got %d", len(pool.execArgs))
	}
	if pool.execArgs[14] != int64(7) {
		t.Fatalf("expected vendor id as last arg, got %v", pool.execArgs[14])
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	pool := &stubPool{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := &PGXVendorsRepository{pool: pool}

	err := repo.UpdateProfile(context.Background(), 999, VendorProfileUpdate{CompanyName: "x", Email: "y", Phone: "z", Location: "w", ServiceRadiusKm: 5})
	if !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestUpdateType_NotFound(t *testing.T) {
	pool := &stubPool{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := &PGXVendorsRepository{pool: pool}

	if err := repo.UpdateType(context.Background(), 1, entity.VendorTypeBoth); !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestRequestVerification_EncodesDocs(t *testing.T) {
	pool := &stubPool{execTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := &PGXVendorsRepository{pool: pool}

	nid := "987654"
	err := repo.RequestVerification(context.Background(), 7, entity.VerificationDocs{NIDNo: &nid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pool.execSQL, "verification_status = 'pending'") {
		t.Fatalf("expected pending status in query:\n%s", pool.execSQL)
	}

	encoded, ok := pool.execArgs[0].(string)
	if !ok {
		t.Fatalf("expected encoded document string, got %T", pool.execArgs[0])
	}
	if !strings.Contains(encoded, `"nid_no":"987654"`) || !strings.Contains(encoded, `"live_photo_url":null`) {
		t.Fatalf("unexpected encoded docs: %s", encoded)
	}
}
