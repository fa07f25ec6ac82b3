package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/fixtureserver"
	"github.com/ShubhamAnand123/onlawthink/internal/infra/session"
	"github.com/ShubhamAnand123/onlawthink/internal/usecase"
)

var (
	asha = domain.Provider{
		ID: "a1", FirstName: "Asha", LastName: "Rao", Location: "Pune", CaseDomain: "Criminal",
		YearOfJoining: 2015, PhoneNo: "+91 98200 00001", EmailAddress: "asha@example.com",
	}
	ben = domain.Provider{ID: "b2", FirstName: "Ben", LastName: "Okafor", CaseDomain: "Family"}
)

func foundReport() usecase.DirectoryReport {
	return usecase.DirectoryReport{
		Mode: domain.ModeAll,
		State: domain.DirectoryState{
			Records: []domain.Provider{asha, ben},
			Message: domain.FoundMessage,
			Outcome: domain.OutcomeFound,
		},
	}
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := session.Claims{
		Email: "viewer@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ONLAWTHINK_TOKEN", "")
	t.Setenv("ONLAWTHINK_SIGNING_KEY", "")
	t.Setenv("ONLAWTHINK_BASE_URL", "")
	t.Setenv("ONLAWTHINK_DEBUG", "")
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"lawyers", "domains", "login", "logout", "init", "fixtures", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	for _, flag := range []string{"workspace", "debug"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
}

func TestLawyersCmd_Subcommands(t *testing.T) {
	cmd := lawyersCmd(&globalFlags{})
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"list", "search", "show"} {
		if !names[expected] {
			t.Errorf("expected lawyers %s", expected)
		}
	}

	search := lawyersSearchCmd(&globalFlags{})
	for _, flag := range []string{"case-domain", "format"} {
		if search.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on search", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- printers ---

func TestPrintReport_JSON_Found(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, foundReport(), "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out reportJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if out.Message != domain.FoundMessage || len(out.Lawyers) != 2 {
		t.Fatalf("unexpected payload %+v", out)
	}
}

func TestPrintReport_Pretty_Unavailable(t *testing.T) {
	report := usecase.DirectoryReport{
		Mode:  domain.ModeAll,
		State: domain.DirectoryState{Records: []domain.Provider{}, Message: domain.UnavailableMessage},
	}
	var buf bytes.Buffer
	if err := printReport(&buf, report, "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), domain.UnavailableMessage) {
		t.Fatalf("expected unavailable message, got:\n%s", buf.String())
	}
}

func TestPrintReport_Pretty_SilentFailure(t *testing.T) {
	report := usecase.DirectoryReport{Mode: domain.ModeAll, State: domain.NewDirectoryState()}
	var buf bytes.Buffer
	_ = printReport(&buf, report, "")
	if !strings.Contains(buf.String(), "(no results)") {
		t.Fatalf("expected placeholder, got:\n%s", buf.String())
	}
}

func TestPrintReport_UnknownFormat_ReturnsError(t *testing.T) {
	err := printReport(&bytes.Buffer{}, foundReport(), "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected error mentioning format, got %v", err)
	}
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	_ = printCatalog(&buf, domain.CaseDomainCatalog{}, "pretty")
	if !strings.Contains(buf.String(), "no case domains") {
		t.Fatalf("got:\n%s", buf.String())
	}

	buf.Reset()
	_ = printCatalog(&buf, nil, "json")
	if strings.TrimSpace(buf.String()) != "{\n  \"caseDomains\": []\n}" {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestPrintProvider_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printProvider(&buf, asha, "pretty"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Asha Rao", "Cases Handled:   Criminal", "Contact Us", "asha@example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestFindVisible(t *testing.T) {
	p, err := findVisible(foundReport(), "b2")
	if err != nil || p.ID != "b2" {
		t.Fatalf("expected b2, got %+v err=%v", p, err)
	}

	if _, err := findVisible(foundReport(), "zz"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	hidden := foundReport()
	hidden.State.Message = domain.UnavailableMessage
	if _, err := findVisible(hidden, "a1"); err == nil {
		t.Fatal("records behind an unavailable message must not be found")
	}
}

// --- helpers ---

func TestDescribe(t *testing.T) {
	if got := describe(domain.ErrUnauthenticated); !strings.HasPrefix(got, "Not Authorized") {
		t.Errorf("got %q", got)
	}
	if got := describe(errors.New(`unknown flag: --nope`)); got != "unknown flag: --nope" {
		t.Errorf("got %q", got)
	}
}

func TestSessionPath(t *testing.T) {
	cfg := domain.DefaultConfig()
	if got := sessionPath("/w", cfg); got != filepath.Join("/w", ".onlawthink", "session") {
		t.Errorf("got %q", got)
	}
	cfg.Session.File = "/etc/onlawthink/session"
	if got := sessionPath("/w", cfg); got != "/etc/onlawthink/session" {
		t.Errorf("got %q", got)
	}
}

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

// --- commands end to end ---

func TestLawyersList_WithoutSessionIsUnauthenticated(t *testing.T) {
	isolateEnv(t)
	tmp := t.TempDir()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"lawyers", "list", "-w", tmp})
	err := cmd.Execute()
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestLoginLogout_RoundTrip(t *testing.T) {
	isolateEnv(t)
	tmp := t.TempDir()
	raw := signedToken(t, time.Hour)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"login", "--token", raw, "-w", tmp})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("login: %v", err)
	}

	stored, err := os.ReadFile(filepath.Join(tmp, ".onlawthink", "session"))
	if err != nil {
		t.Fatalf("read session: %v", err)
	}
	if strings.TrimSpace(string(stored)) != raw {
		t.Fatalf("stored token mismatch")
	}

	cmd = newRootCmd()
	cmd.SetArgs([]string{"logout", "-w", tmp})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, ".onlawthink", "session")); !os.IsNotExist(err) {
		t.Fatalf("expected session file removed, got %v", err)
	}
}

func TestLogin_RejectsExpiredToken(t *testing.T) {
	isolateEnv(t)
	tmp := t.TempDir()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"login", "--token", signedToken(t, -time.Hour), "-w", tmp})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestLawyersSearch_AgainstFixtureServer(t *testing.T) {
	isolateEnv(t)
	tmp := t.TempDir()

	snap := domain.DirectorySnapshot{
		CaseDomains: domain.NewCaseDomainCatalog([]string{"Criminal", "Family"}),
		Providers:   []domain.Provider{asha, ben},
	}
	router := fixtureserver.New(snap, domain.DefaultConfig().Service.Paths, zap.NewNop()).Router()
	var unauthenticated atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			unauthenticated.Add(1)
		}
		router.ServeHTTP(w, r)
	}))
	defer srv.Close()

	t.Setenv("ONLAWTHINK_BASE_URL", srv.URL)
	t.Setenv("ONLAWTHINK_TOKEN", signedToken(t, time.Hour))

	for _, args := range [][]string{
		{"lawyers", "search", "--case-domain", "Criminal", "--format", "json"},
		{"lawyers", "list"},
		{"lawyers", "show", "a1"},
		{"domains", "--format", "json"},
	} {
		cmd := newRootCmd()
		cmd.SetArgs(append(args, "-w", tmp))
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}
	if n := unauthenticated.Load(); n != 0 {
		t.Fatalf("expected a bearer token on every call, %d calls had none", n)
	}
}
