package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-screen/internal/model"
)

const leanne = `{"id":1,"name":"Leanne","username":"Bret","email":"Sincere@april.biz","address":{"city":"Gwenborough"},"phone":"1-770","website":"hildegard.org","company":{"name":"Romaguera-Crona"}}`

func TestDecodeUsers_Leanne(t *testing.T) {
	users, err := model.DecodeUsers([]byte(`[` + leanne + `]`))
	require.NoError(t, err)

	want := []model.User{{
		ID:       1,
		Name:     "Leanne",
		Surname:  "",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Address:  map[string]string{"city": "Gwenborough"},
		Phone:    "1-770",
		Website:  "hildegard.org",
		Company:  map[string]string{"name": "Romaguera-Crona"},
	}}
	if diff := cmp.Diff(want, users); diff != "" {
		t.Errorf("DecodeUsers() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUsers_PreservesOrder(t *testing.T) {
	body := `[
		{"id":3,"name":"C","username":"c","email":"c@x","address":{},"phone":"3","website":"c.org","company":{}},
		{"id":1,"name":"A","username":"a","email":"a@x","address":{},"phone":"1","website":"a.org","company":{}},
		{"id":2,"name":"B","surname":"Bee","username":"b","email":"b@x","address":{},"phone":"2","website":"b.org","company":{}}
	]`

	users, err := model.DecodeUsers([]byte(body))
	require.NoError(t, err)
	require.Len(t, users, 3)

	ids := []int{users[0].ID, users[1].ID, users[2].ID}
	assert.Equal(t, []int{3, 1, 2}, ids)
	assert.Equal(t, "Bee", users[2].Surname)
}

func TestDecodeUsers_FlattensNestedAddress(t *testing.T) {
	body := `[{"id":1,"name":"Leanne","username":"Bret","email":"e","phone":"p","website":"w",
		"address":{"street":"Kulas Light","geo":{"lat":"-37.3159","lng":"81.1496"}},
		"company":{"name":"Romaguera-Crona","bs":"harness real-time e-markets"}}]`

	users, err := model.DecodeUsers([]byte(body))
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, map[string]string{
		"street":  "Kulas Light",
		"geo.lat": "-37.3159",
		"geo.lng": "81.1496",
	}, users[0].Address)
}

func TestDecodeUsers_ZeroID(t *testing.T) {
	body := `[{"id":0,"name":"n","username":"u","email":"e","address":{},"phone":"p","website":"w","company":{}}]`

	users, err := model.DecodeUsers([]byte(body))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 0, users[0].ID)
}

func TestDecodeUsers_CollisionIsDeterministic(t *testing.T) {
	body := []byte(`[{"id":1,"name":"n","username":"u","email":"e","address":{"geo.lat":"flat","geo":{"lat":"nested"}},"phone":"p","website":"w","company":{}}]`)

	for i := 0; i < 50; i++ {
		users, err := model.DecodeUsers(body)
		require.ErrorIs(t, err, model.ErrInvalidUser)
		require.Nil(t, users)
	}
}

func TestUser_UnmarshalJSON_LeadingZeroID(t *testing.T) {
	var u model.User
	err := u.UnmarshalJSON([]byte(`{"id":01,"name":"n","username":"u","email":"e","address":{},"phone":"p","website":"w","company":{}}`))

	assert.ErrorIs(t, err, model.ErrInvalidUser)
	assert.Zero(t, u.ID)
}

func TestDecodeUsers_Empty(t *testing.T) {
	users, err := model.DecodeUsers([]byte(` [] `))
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestDecodeUsers_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "Fail: id is a string",
			body:    `[` + leanne + `,{"id":"abc","name":"n","username":"u","email":"e","address":{},"phone":"p","website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: id is a float",
			body:    `[{"id":1.5,"name":"n","username":"u","email":"e","address":{},"phone":"p","website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: missing email",
			body:    `[{"id":1,"name":"n","username":"u","address":{},"phone":"p","website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: null name",
			body:    `[{"id":1,"name":null,"username":"u","email":"e","address":{},"phone":"p","website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: phone is a number",
			body:    `[{"id":1,"name":"n","username":"u","email":"e","address":{},"phone":17,"website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: company value is a number",
			body:    `[{"id":1,"name":"n","username":"u","email":"e","address":{},"phone":"p","website":"w","company":{"size":10}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: address is an array",
			body:    `[{"id":1,"name":"n","username":"u","email":"e","address":[],"phone":"p","website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: flattened key collides with literal key",
			body:    `[{"id":1,"name":"n","username":"u","email":"e","address":{"geo.lat":"flat","geo":{"lat":"nested"}},"phone":"p","website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: empty nested object",
			body:    `[{"id":1,"name":"n","username":"u","email":"e","address":{"geo":{}},"phone":"p","website":"w","company":{}}]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: id with leading zero",
			body:    `[{"id":01,"name":"n","username":"u","email":"e","address":{},"phone":"p","website":"w","company":{}}]`,
			// Отклоняется либо разбором массива, либо проверкой поля.
			wantErr: nil,
		},
		{
			name:    "Fail: negative id with leading zero",
			body:    `[{"id":-01,"name":"n","username":"u","email":"e","address":{},"phone":"p","website":"w","company":{}}]`,
			// Отклоняется либо разбором массива, либо проверкой поля.
			wantErr: nil,
		},
		{
			name:    "Fail: element is null",
			body:    `[null]`,
			wantErr: model.ErrInvalidUser,
		},
		{
			name:    "Fail: not an array",
			body:    leanne,
			wantErr: model.ErrMalformedPayload,
		},
		{
			name:    "Fail: null body",
			body:    `null`,
			wantErr: model.ErrMalformedPayload,
		},
		{
			name:    "Fail: truncated JSON",
			body:    `[{"id":1,`,
			wantErr: model.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := model.DecodeUsers([]byte(tt.body))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Error(t, err)
			}
			assert.Nil(t, users)
		})
	}
}
