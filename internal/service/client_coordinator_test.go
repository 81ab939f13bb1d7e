package service

import (
	"testing"

	"github.com/MKhiriev/go-auth-form/internal/app"
	"github.com/MKhiriev/go-auth-form/internal/form"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/mock"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	published []models.Message
}

func (p *recordingPublisher) Publish(msg models.Message) {
	p.published = append(p.published, msg)
}

func newTestCoordinator(t *testing.T) (*AuthCoordinator, *recordingPublisher, *mock.MockDialogs, *mock.MockNavigator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pub := &recordingPublisher{}
	dialogs := mock.NewMockDialogs(ctrl)
	navigator := mock.NewMockNavigator(ctrl)
	return NewAuthCoordinator(pub, dialogs, navigator, logger.Nop()), pub, dialogs, navigator
}

func filled(mode models.Mode, username, password string) form.State {
	s := form.New()
	s.Mode = mode
	s = form.WithUsername(s, username)
	return form.WithPassword(s, password)
}

// ─────────────────────────────────────────────
// Submit
// ─────────────────────────────────────────────

func TestSubmit_BlankUsername_SetsHintAndSendsNothing(t *testing.T) {
	c, pub, _, _ := newTestCoordinator(t)

	got := c.Submit(filled(models.ModeLogin, "", "secret"))

	assert.Equal(t, form.HintUsername, got.UsernameHint)
	assert.Empty(t, got.PasswordHint)
	assert.False(t, got.Locked)
	assert.Empty(t, pub.published)
	_, pending := c.Pending()
	assert.False(t, pending)
}

func TestSubmit_BothBlank_SetsBothHints(t *testing.T) {
	c, pub, _, _ := newTestCoordinator(t)

	got := c.Submit(filled(models.ModeRegister, "  ", ""))

	assert.Equal(t, form.HintUsername, got.UsernameHint)
	assert.Equal(t, form.HintPassword, got.PasswordHint)
	assert.False(t, got.Locked)
	assert.Empty(t, pub.published)
}

func TestSubmit_InvalidUsername_ShowsDialogAndSendsNothing(t *testing.T) {
	c, pub, dialogs, _ := newTestCoordinator(t)
	dialogs.EXPECT().Error(app.DialogInvalidEmailTitle, app.DialogInvalidEmailText).Times(1)

	in := filled(models.ModeLogin, "bad email", "secret")
	got := c.Submit(in)

	assert.Equal(t, in, got)
	assert.Empty(t, pub.published)
}

func TestSubmit_ValidLogin_LocksAndPublishesOnce(t *testing.T) {
	c, pub, _, _ := newTestCoordinator(t)

	got := c.Submit(filled(models.ModeLogin, "john.doe", "secret"))

	assert.True(t, got.Locked)
	assert.True(t, got.Progress())
	require.Len(t, pub.published, 1)
	assert.Equal(t, models.AuthRequest{Email: "john.doe@auth.gr", Password: "secret", IsLogin: true}, pub.published[0])

	req, pending := c.Pending()
	assert.True(t, pending)
	assert.True(t, req.IsLogin)
}

func TestSubmit_ValidRegister_PublishesRegistration(t *testing.T) {
	c, pub, _, _ := newTestCoordinator(t)

	c.Submit(filled(models.ModeRegister, "νικος", "pw"))

	require.Len(t, pub.published, 1)
	assert.Equal(t, models.AuthRequest{Email: "νικος@auth.gr", Password: "pw", IsLogin: false}, pub.published[0])
}

func TestSubmit_WhileLocked_IsInert(t *testing.T) {
	c, pub, _, _ := newTestCoordinator(t)

	s := c.Submit(filled(models.ModeLogin, "john", "secret"))
	again := c.Submit(s)
	again = c.Submit(again)

	assert.Equal(t, s, again)
	assert.Len(t, pub.published, 1)
}

// ─────────────────────────────────────────────
// HandleResult
// ─────────────────────────────────────────────

func TestHandleResult_OkAfterRegister_ClearsAndNavigates(t *testing.T) {
	c, _, _, navigator := newTestCoordinator(t)
	navigator.EXPECT().ShowHome().Times(1)

	s := c.Submit(filled(models.ModeRegister, "alice", "pw"))
	require.True(t, s.Locked)

	got := c.HandleResult(s, models.OkResult())

	assert.False(t, got.Locked)
	assert.Empty(t, got.Username)
	assert.Empty(t, got.Password)
	assert.Equal(t, models.ModeLogin, got.Mode)
	_, pending := c.Pending()
	assert.False(t, pending)
}

func TestHandleResult_ErrAfterLogin_ShowsInvalidCredentials(t *testing.T) {
	c, _, dialogs, _ := newTestCoordinator(t)
	dialogs.EXPECT().Error(app.DialogInvalidCredentialsTitle, app.DialogInvalidCredentialsText).Times(1)

	s := c.Submit(filled(models.ModeLogin, "john", "wrong"))
	got := c.HandleResult(s, models.ErrResult())

	assert.False(t, got.Locked)
	assert.Equal(t, "john", got.Username)
	assert.Equal(t, "wrong", got.Password)
	assert.Equal(t, models.ModeLogin, got.Mode)
}

func TestHandleResult_ErrAfterRegister_ShowsUserExists(t *testing.T) {
	c, _, dialogs, _ := newTestCoordinator(t)
	dialogs.EXPECT().Error(app.DialogUserExistsTitle, app.DialogUserExistsText).Times(1)

	s := c.Submit(filled(models.ModeRegister, "taken", "pw"))
	got := c.HandleResult(s, models.ErrResult())

	assert.False(t, got.Locked)
	assert.Equal(t, "taken", got.Username)
	assert.Equal(t, models.ModeRegister, got.Mode)
}

func TestHandleResult_WithoutRequest_FallsBackToCurrentMode(t *testing.T) {
	c, _, dialogs, _ := newTestCoordinator(t)
	dialogs.EXPECT().Error(app.DialogUserExistsTitle, app.DialogUserExistsText).Times(1)

	got := c.HandleResult(filled(models.ModeRegister, "x", "y"), models.ErrResult())

	assert.False(t, got.Locked)
}

func TestHandleResult_UnlockIsIdempotent(t *testing.T) {
	c, _, dialogs, _ := newTestCoordinator(t)
	dialogs.EXPECT().Error(gomock.Any(), gomock.Any()).Times(2)

	s := c.Submit(filled(models.ModeLogin, "john", "pw"))
	once := c.HandleResult(s, models.ErrResult())
	twice := c.HandleResult(once, models.ErrResult())

	assert.Equal(t, once, twice)
}

func TestSubmit_AfterResult_DispatchesAgain(t *testing.T) {
	c, pub, dialogs, _ := newTestCoordinator(t)
	dialogs.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	s := c.Submit(filled(models.ModeLogin, "john", "pw"))
	s = c.HandleResult(s, models.ErrResult())
	s = c.Submit(s)

	assert.True(t, s.Locked)
	assert.Len(t, pub.published, 2)
}
