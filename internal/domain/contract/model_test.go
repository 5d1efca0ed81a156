package contract

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleBoyfriend.Valid())
	assert.True(t, RoleGirlfriend.Valid())
	assert.False(t, Role("partner").Valid())
	assert.False(t, Role("").Valid())
}

func TestAllRolesSigned(t *testing.T) {
	assert.False(t, AllRolesSigned(nil))
	assert.False(t, AllRolesSigned([]Signature{{Role: RoleBoyfriend}}))
	assert.False(t, AllRolesSigned([]Signature{{Role: RoleBoyfriend}, {Role: RoleBoyfriend}}))
	assert.True(t, AllRolesSigned([]Signature{{Role: RoleGirlfriend}, {Role: RoleBoyfriend}}))
}

func TestFindSignature_FirstMatch(t *testing.T) {
	sigs := []Signature{
		{Role: RoleGirlfriend, Name: "Lee"},
		{Role: RoleBoyfriend, Name: "Sam"},
		{Role: RoleBoyfriend, Name: "Sam again"},
	}
	s := FindSignature(sigs, RoleBoyfriend)
	require.NotNil(t, s)
	assert.Equal(t, "Sam", s.Name)
	assert.Nil(t, FindSignature(sigs[:1], RoleBoyfriend))
}

func TestNewContractView(t *testing.T) {
	id := uuid.New()
	v := NewContractView(Contract{ID: id}, nil, []Signature{{Role: RoleGirlfriend, Name: "Lee"}})

	assert.Empty(t, v.Terms)
	assert.NotNil(t, v.Terms)
	assert.False(t, v.HasBoyfriendSigned)
	assert.True(t, v.HasGirlfriendSigned)
	require.NotNil(t, v.GirlfriendSignature)
	assert.Equal(t, "Lee", v.GirlfriendSignature.Name)
}

func TestNewCelebrationView(t *testing.T) {
	completed := time.Date(2024, time.February, 14, 20, 0, 0, 0, time.UTC)
	msg := "forever"
	v := NewContractView(
		Contract{ID: uuid.New(), Title: "Our Deal", Status: StatusCompleted, CompletedAt: &completed},
		[]Term{{Text: "Be kind", Order: 0}},
		[]Signature{
			{Role: RoleBoyfriend, Name: "Sam", SignedAt: completed.Add(-time.Hour)},
			{Role: RoleGirlfriend, Name: "Lee", Message: &msg, SignedAt: completed},
		},
	)

	cv := NewCelebrationView(v, time.UTC)
	assert.True(t, cv.Completed)
	assert.Equal(t, "February 14, 2024", cv.Since)
	require.NotNil(t, cv.Boyfriend)
	assert.Equal(t, "2/14/2024", cv.Boyfriend.SignedOn)
	require.NotNil(t, cv.Girlfriend)
	assert.Equal(t, "forever", *cv.Girlfriend.Message)
}

func TestNewCelebrationView_Pending(t *testing.T) {
	cv := NewCelebrationView(NewContractView(Contract{ID: uuid.New(), Status: StatusPending}, nil, nil), nil)
	assert.False(t, cv.Completed)
	assert.Empty(t, cv.Since)
	assert.Nil(t, cv.Boyfriend)
	assert.Nil(t, cv.Girlfriend)
}

func TestDefaultTemplate(t *testing.T) {
	tpl := DefaultTemplate()
	assert.Equal(t, DefaultTitle, tpl.Title)
	assert.Len(t, tpl.Terms, 5)
	assert.Equal(t, "We promise to communicate openly and honestly with each other", tpl.Terms[0])
}

func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate([]byte("terms:\n  - one\n  - two\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, tpl.Title)
	assert.Equal(t, []string{"one", "two"}, tpl.Terms)

	_, err = ParseTemplate([]byte("terms: [unclosed"))
	assert.Error(t, err)
}
