package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ember/internal/repository"
	"github.com/alexanderramin/ember/internal/service"
	"github.com/alexanderramin/ember/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. IsInteractive reports false so commands take their flag-driven paths.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	checkInRepo := repository.NewSQLiteCheckInRepo(db)
	contactRepo := repository.NewSQLiteContactRepo(db)

	return &App{
		DeviceUserID:  "test-device",
		CheckIns:      service.NewCheckInService(checkInRepo),
		Summary:       service.NewSummaryService(checkInRepo),
		Contacts:      service.NewContactService(contactRepo),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures cobra's own output. Most
// commands print their result via fmt.Print, so assertions focus on errors.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- checkin commands ---

func TestCheckInLogCmd_WithFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "log",
		"--sleep", "6.5", "--stress", "7", "--workload", "8", "--mood", "4",
		"--date", "2025-03-15", "--notes", "deadline week")
	require.NoError(t, err)

	history, err := app.CheckIns.History(context.Background(), "test-device", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "2025-03-15", history[0].Date)
}

func TestCheckInLogCmd_NonInteractiveRequiresFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "log")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-interactive")
}

func TestCheckInLogCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "log",
		"--sleep", "7", "--stress", "5", "--workload", "5", "--mood", "6",
		"--date", "not-a-date")
	assert.Error(t, err)
}

func TestCheckInListCmd_EmptyDB(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "list")
	require.NoError(t, err)
}

func TestCheckInRemoveCmd_RequiresID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "remove")
	assert.Error(t, err)
}

func TestCheckInClearCmd_NonInteractiveRequiresYes(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "clear")
	assert.Error(t, err)
}

func TestCheckInClearCmd_WithYes(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "log",
		"--sleep", "7", "--stress", "5", "--workload", "5", "--mood", "6",
		"--date", "2025-03-15")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "checkin", "clear", "--yes")
	require.NoError(t, err)

	history, err := app.CheckIns.History(context.Background(), "test-device", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

// --- summary command ---

func TestSummaryCmd_EmptyDB(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "summary", "--date", "2025-03-15")
	require.NoError(t, err)
}

func TestSummaryCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "summary", "--date", "soon")
	assert.Error(t, err)
}

// --- export / import commands ---

func TestExportImportCmd_RoundTripViaFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "checkin", "log",
		"--sleep", "6.5", "--stress", "7", "--workload", "8", "--mood", "4",
		"--date", "2025-03-15")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.json")
	_, err = executeCmd(t, app, "export", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-03-15")

	_, err = executeCmd(t, app, "checkin", "clear", "--yes")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "import", path)
	require.NoError(t, err)

	history, err := app.CheckIns.History(context.Background(), "test-device", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestImportCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import", "/nonexistent/export.json")
	assert.Error(t, err)
}

// --- contact commands ---

func TestContactAddCmd_WithFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "contact", "add", "--name", "Avery", "--phone", "555-0100")
	require.NoError(t, err)

	contacts, err := app.Contacts.List(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Avery", contacts[0].Name)
}

func TestContactAddCmd_NonInteractiveRequiresName(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "contact", "add")
	assert.Error(t, err)
}

func TestContactRemoveCmd_UnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "contact", "remove", "missing-id")
	assert.Error(t, err)
}

// --- whoami ---

func TestWhoamiCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "whoami")
	require.NoError(t, err)
}
