package web

import (
	"bytes"
	"strings"
	"testing"

	"hospital-emr-backend/internal/models"
)

func TestInput(t *testing.T) {
	out, err := Input(InputField{Name: "email", Label: "Email", Type: "email", Required: true, Value: "a@b.test"})
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<label for="email">Email`,
		`class="required-marker"`,
		`id="email"`,
		`name="email"`,
		`type="email"`,
		`value="a@b.test"`,
		`required aria-required="true"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %s", want, html)
		}
	}
	if strings.Contains(html, "field-error") || strings.Contains(html, "aria-invalid") {
		t.Errorf("no error markup expected without an error: %s", html)
	}
}

func TestInput_Error(t *testing.T) {
	out, err := Input(InputField{ID: "login-password", Name: "password", Label: "Password", Error: "Invalid <password>"})
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<label for="login-password">`,
		`type="text"`,
		`aria-invalid="true"`,
		`aria-describedby="login-password-error"`,
		`<p class="field-error" id="login-password-error" role="alert">Invalid &lt;password&gt;</p>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %s", want, html)
		}
	}
	if strings.Contains(html, "required") {
		t.Errorf("optional field must not be marked required: %s", html)
	}
}

func TestSelect(t *testing.T) {
	out, err := Select(SelectField{
		Name:        "role",
		Label:       "Role",
		Value:       "nurse",
		Placeholder: "Choose a role",
		Options:     []Option{{Value: "doctor", Label: "Doctor"}, {Value: "nurse", Label: "Nurse"}},
		Required:    true,
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<label for="role">Role`,
		`<select id="role" name="role" required aria-required="true">`,
		`<option value="">Choose a role</option>`,
		`<option value="doctor">Doctor</option>`,
		`<option value="nurse" selected>Nurse</option>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %s", want, html)
		}
	}
}

func TestTextarea(t *testing.T) {
	out, err := Textarea(TextareaField{Name: "summary", Label: "Summary", Value: "stable", Error: "too short"})
	if err != nil {
		t.Fatalf("Textarea: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<textarea id="summary" name="summary" rows="4" aria-invalid="true" aria-describedby="summary-error">stable</textarea>`,
		`id="summary-error"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in %s", want, html)
		}
	}
}

func TestThemeColors(t *testing.T) {
	p := ThemeColors(models.HospitalTheme{PrimaryColor: "#0f766e", SecondaryColor: "#F59E0B"})
	if p.Primary.Color != "#0f766e" || p.PrimaryBg.BackgroundColor != "#0f766e" {
		t.Errorf("unexpected primary pairs %+v %+v", p.Primary, p.PrimaryBg)
	}
	if p.SecondaryBg.BackgroundColor != "#F59E0B" || p.SecondaryBg.Color != onColor {
		t.Errorf("unexpected secondary pair %+v", p.SecondaryBg)
	}
	if got := string(p.PrimaryBg.Style()); got != "color: #ffffff; background-color: #0f766e" {
		t.Errorf("unexpected style %q", got)
	}
}

func TestThemeColors_Defaults(t *testing.T) {
	p := ThemeColors(models.HospitalTheme{PrimaryColor: "", SecondaryColor: "red; display:none"})
	if p.Primary.Color != DefaultPrimaryColor {
		t.Errorf("expected default primary, got %q", p.Primary.Color)
	}
	if p.Secondary.Color != DefaultSecondaryColor {
		t.Errorf("expected malformed secondary to fall back, got %q", p.Secondary.Color)
	}
	if got := string(p.Variables()); got != "--color-primary: #2563eb; --color-secondary: #64748b" {
		t.Errorf("unexpected variables %q", got)
	}
}

func TestNavigationFor(t *testing.T) {
	labels := func(role models.Role) string {
		var parts []string
		for _, item := range NavigationFor(role) {
			parts = append(parts, item.Label)
		}
		return strings.Join(parts, ",")
	}

	if got := labels(models.RolePatient); got != "Dashboard,My record,Doctors,Laboratory,Plans" {
		t.Errorf("patient navigation: %s", got)
	}
	if got := labels(models.RoleCashier); !strings.Contains(got, "Corporate clients") || strings.Contains(got, "Staff") {
		t.Errorf("cashier navigation: %s", got)
	}
}

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "login.html", NewLoginPage("x@h1.test", "Invalid email or password")); err != nil {
		t.Fatalf("login.html: %v", err)
	}
	if !strings.Contains(buf.String(), `value="x@h1.test"`) || !strings.Contains(buf.String(), "Invalid email or password") {
		t.Errorf("login page missing echoed email or error: %s", buf.String())
	}

	buf.Reset()
	page := DashboardPage{
		Session:    DashboardUser{Name: "Zara", Role: "doctor"},
		Hospital:   "St. Luke",
		Navigation: NavigationFor(models.RoleDoctor),
		Palette:    ThemeColors(models.HospitalTheme{PrimaryColor: "#0f766e"}),
	}
	if err := tmpl.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		t.Fatalf("dashboard.html: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"St. Luke", "Zara (doctor)", `href="/api/staff"`, "--color-primary: #0f766e"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in dashboard", want)
		}
	}
}
