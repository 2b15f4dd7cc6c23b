package swico

import (
	"errors"
	"testing"
)

func TestCheckDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "single date", value: "240630"},
		{name: "range", value: "240501240630"},
		{name: "leap day", value: "240229"},
		{name: "wrong length", value: "2406", wantErr: true},
		{name: "impossible day", value: "240230", wantErr: true},
		{name: "impossible month", value: "241330", wantErr: true},
		{name: "range with bad second half", value: "240501249901", wantErr: true},
		{name: "letters", value: "24JUNE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkDate(%q) = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCheckVatNum(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "106017086"},
		{name: "too short", value: "10601708", wantErr: true},
		{name: "too long", value: "1060170861", wantErr: true},
		{name: "letter", value: "10601708A", wantErr: true},
		{name: "with CHE prefix", value: "CHE106017", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkVatNum(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkVatNum(%q) = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCheckEscapes(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain", value: "145258"},
		{name: "escaped slash", value: `145258\/Dépôt`},
		{name: "escaped backslash", value: `C\\Users`},
		{name: "unescaped slash", value: "145258/Depot", wantErr: true},
		{name: "dangling backslash", value: `145258\`, wantErr: true},
		{name: "backslash before letter", value: `145258\n`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkEscapes(tt.value)
			if tt.wantErr {
				var escErr *EscapeError
				if !errors.As(err, &escErr) {
					t.Errorf("checkEscapes(%q) = %v, want EscapeError", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Errorf("checkEscapes(%q) failed: %v", tt.value, err)
			}
		})
	}
}

func TestCheckGroups(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		conditions bool
		wantErr    error
	}{
		{name: "single rate", value: "7.7"},
		{name: "rate amount pairs", value: "3.7:400.19;7.7:553.39;0:14"},
		{name: "comma separator", value: "7,7", wantErr: &DecimalSeparatorError{}},
		{name: "not a number", value: "8:x", wantErr: &NumberFormatError{}},
		{name: "empty subgroup", value: "8:", wantErr: &NumberFormatError{}},
		{name: "valid conditions", value: "3:10;0:30", conditions: true},
		{name: "conditions missing days", value: "3", conditions: true, wantErr: &ConditionsFormatError{}},
		{name: "conditions with three elements", value: "3:10:5", conditions: true, wantErr: &ConditionsFormatError{}},
		{name: "conditions fractional days", value: "3:10.5", conditions: true, wantErr: &ConditionsFormatError{}},
		{name: "conditions negative days", value: "3:-10", conditions: true, wantErr: &ConditionsFormatError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkGroups(tt.value, tt.conditions)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("checkGroups(%q) failed: %v", tt.value, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("checkGroups(%q) succeeded, want %T", tt.value, tt.wantErr)
			}
			var ok bool
			switch tt.wantErr.(type) {
			case *DecimalSeparatorError:
				var e *DecimalSeparatorError
				ok = errors.As(err, &e)
			case *NumberFormatError:
				var e *NumberFormatError
				ok = errors.As(err, &e)
			case *ConditionsFormatError:
				var e *ConditionsFormatError
				ok = errors.As(err, &e)
			}
			if !ok {
				t.Errorf("checkGroups(%q) = %v, want %T", tt.value, err, tt.wantErr)
			}
		})
	}
}
