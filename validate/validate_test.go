package validate

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestEmail_NormalizesTrimLowercase(t *testing.T) {
	r := Email(" Foo@Bar.COM ")
	if !r.Valid {
		t.Fatalf("expected valid, got %q", r.Err)
	}
	if r.Value != "foo@bar.com" {
		t.Fatalf("expected foo@bar.com, got %q", r.Value)
	}
}

func TestEmail_Invalid(t *testing.T) {
	for _, in := range []string{"", "not-an-email", "a@b", "a b@c.com", "a@b c.com"} {
		if r := Email(in); r.Valid {
			t.Fatalf("expected %q to be invalid", in)
		}
	}
}

func TestPassword_MinLength(t *testing.T) {
	if r := Password("12345", 0); r.Valid {
		t.Fatalf("expected 5 chars to fail the default minimum of 6")
	}
	r := Password(" Abc12 ", 0)
	if !r.Valid {
		t.Fatalf("expected valid, got %q", r.Err)
	}
	// a senha passa intacta: espaços e maiúsculas preservados
	if r.Value != " Abc12 " {
		t.Fatalf("expected untouched value, got %q", r.Value)
	}
}

func TestPassword_ConfigurableMinimum(t *testing.T) {
	if r := Password("1234567", 8); r.Valid {
		t.Fatalf("expected 7 chars to fail minimum of 8")
	}
	if !strings.Contains(Password("1234567", 8).Err, "8") {
		t.Fatalf("expected minimum in the message")
	}
}

func TestDNI_StripsNonDigits(t *testing.T) {
	r := DNI("123-456-7")
	if !r.Valid {
		t.Fatalf("expected valid, got %q", r.Err)
	}
	if r.Value != "1234567" {
		t.Fatalf("expected 1234567, got %q", r.Value)
	}

	r = DNI("12.345.678")
	if !r.Valid || r.Value != "12345678" {
		t.Fatalf("expected 12345678, got %+v", r)
	}
}

func TestDNI_WrongDigitCount(t *testing.T) {
	if r := DNI("123"); r.Valid {
		t.Fatalf("expected 3 digits to be invalid")
	}
	if r := DNI("123456789"); r.Valid {
		t.Fatalf("expected 9 digits to be invalid")
	}
}

func TestPhone_DigitRange(t *testing.T) {
	r := Phone("+54 (11) 4321-0987")
	if !r.Valid {
		t.Fatalf("expected valid, got %q", r.Err)
	}
	if r.Value != "541143210987" {
		t.Fatalf("expected 541143210987, got %q", r.Value)
	}
	if r := Phone("123456789"); r.Valid {
		t.Fatalf("expected 9 digits to be invalid")
	}
	if r := Phone("1234567890123456"); r.Valid {
		t.Fatalf("expected 16 digits to be invalid")
	}
}

func TestOTP_ExactlySixDigits(t *testing.T) {
	r := OTP("12-34-56")
	if !r.Valid || r.Value != "123456" {
		t.Fatalf("expected 123456, got %+v", r)
	}
	if r := OTP("12345"); r.Valid {
		t.Fatalf("expected 5 digits to be invalid")
	}
	if r := OTP("1234567"); r.Valid {
		t.Fatalf("expected 7 digits to be invalid")
	}
}

func TestName_TrimsAndBounds(t *testing.T) {
	r := Name("  Ana  ", "Nombre")
	if !r.Valid || r.Value != "Ana" {
		t.Fatalf("expected trimmed Ana, got %+v", r)
	}
	if r := Name("A", "Nombre"); r.Valid {
		t.Fatalf("expected single char to be invalid")
	}
	if r := Name(strings.Repeat("a", 51), "Nombre"); r.Valid {
		t.Fatalf("expected 51 chars to be invalid")
	}
}

func TestName_MessageUsesLabel(t *testing.T) {
	r := Name("", "Apellido")
	if r.Valid {
		t.Fatalf("expected invalid")
	}
	if !strings.HasPrefix(r.Err, "Apellido") {
		t.Fatalf("expected label in message, got %q", r.Err)
	}
}

func TestBirthDate_AgeBounds(t *testing.T) {
	year := time.Now().Year()

	adult := fmt.Sprintf("%d-06-15", year-30)
	if r := BirthDate(adult); !r.Valid {
		t.Fatalf("expected %s to be valid, got %q", adult, r.Err)
	}

	child := fmt.Sprintf("%d-06-15", year-5)
	if r := BirthDate(child); r.Valid {
		t.Fatalf("expected age 5 to be invalid")
	}

	ancient := fmt.Sprintf("%d-06-15", year-130)
	if r := BirthDate(ancient); r.Valid {
		t.Fatalf("expected age 130 to be invalid")
	}

	if r := BirthDate("no-es-fecha"); r.Valid {
		t.Fatalf("expected unparseable date to be invalid")
	}
}

func TestSex_CaseInsensitiveSet(t *testing.T) {
	for _, in := range []string{"M", "f", "O", "MASCULINO", "femenino", "Otro"} {
		r := Sex(in)
		if !r.Valid {
			t.Fatalf("expected %q to be valid", in)
		}
		if r.Value != in {
			t.Fatalf("expected value to pass through unchanged, got %q", r.Value)
		}
	}
	if r := Sex("x"); r.Valid {
		t.Fatalf("expected x to be invalid")
	}
	if r := Sex(""); r.Valid {
		t.Fatalf("expected empty to be invalid")
	}
}

func TestFields_CollectsAllFailures(t *testing.T) {
	res := Fields(map[string]string{
		"email":    "nope",
		"password": "123",
		"dni":      "12.345.678",
	}, map[string]Rule{
		"email":    Email,
		"password": func(raw string) Result { return Password(raw, 6) },
		"dni":      DNI,
	})

	if res.Valid {
		t.Fatalf("expected invalid")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected both failures collected, got %+v", res.Errors)
	}
	if res.Values["dni"] != "12345678" {
		t.Fatalf("expected normalized dni kept, got %q", res.Values["dni"])
	}
}

func TestFields_AllValid(t *testing.T) {
	res := Fields(map[string]string{
		"email": "a@b.co",
		"otp":   "12 34 56",
	}, map[string]Rule{
		"email": Email,
		"otp":   OTP,
	})

	if !res.Valid || len(res.Errors) != 0 {
		t.Fatalf("expected valid, got %+v", res.Errors)
	}
	if res.Values["otp"] != "123456" {
		t.Fatalf("expected normalized otp, got %q", res.Values["otp"])
	}
}
