package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentorshipStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to MentorshipStatus
		want     bool
	}{
		{MentorshipPending, MentorshipAccepted, true},
		{MentorshipPending, MentorshipRejected, true},
		{MentorshipPending, MentorshipPending, false},
		{MentorshipAccepted, MentorshipRejected, false},
		{MentorshipAccepted, MentorshipPending, false},
		{MentorshipRejected, MentorshipAccepted, false},
		{MentorshipPending, MentorshipStatus("cancelled"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAudienceVisibility(t *testing.T) {
	assert.True(t, AudienceAll.VisibleTo(RoleStudent))
	assert.True(t, AudienceStudents.VisibleTo(RoleStudent))
	assert.False(t, AudienceAlumni.VisibleTo(RoleStudent))

	assert.True(t, AudienceAlumni.VisibleTo(RoleAlumni))
	assert.False(t, AudienceStudents.VisibleTo(RoleAlumni))

	for _, a := range []Audience{AudienceAll, AudienceAlumni, AudienceStudents} {
		assert.True(t, a.VisibleTo(RoleAdmin))
	}
	assert.Nil(t, AudiencesFor(RoleAdmin))
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAlumni.SelfRegistrable())
	assert.True(t, RoleStudent.SelfRegistrable())
	assert.False(t, RoleAdmin.SelfRegistrable())
	assert.True(t, RoleAlumni.RequiresApproval())
	assert.False(t, RoleStudent.RequiresApproval())
	assert.False(t, Role("guest").IsValid())
}

func TestJobType_IsValid(t *testing.T) {
	for _, jt := range []JobType{JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract} {
		assert.True(t, jt.IsValid(), jt)
	}
	assert.False(t, JobType("freelance").IsValid())
	assert.False(t, JobType("").IsValid())
}
