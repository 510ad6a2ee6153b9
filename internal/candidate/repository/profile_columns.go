// Package repository implements candidate persistence for PostgreSQL and MySQL.
// Identity fields are stored as their encrypted parts; the structured profile
// is stored as JSON columns.
package repository

import (
	"encoding/json"

	candidateDomain "github.com/allisson/resumevault/internal/candidate/domain"
	apperrors "github.com/allisson/resumevault/internal/errors"
)

// profileColumns is the JSON column form of a candidate profile.
type profileColumns struct {
	education  string
	experience string
	skills     string
}

func marshalProfile(profile candidateDomain.Profile) (profileColumns, error) {
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return profileColumns{}, apperrors.Wrap(err, "failed to marshal education")
	}

	experience, err := json.Marshal(profile.Experience)
	if err != nil {
		return profileColumns{}, apperrors.Wrap(err, "failed to marshal experience")
	}

	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return profileColumns{}, apperrors.Wrap(err, "failed to marshal skills")
	}

	return profileColumns{
		education:  string(education),
		experience: string(experience),
		skills:     string(skillsJSON),
	}, nil
}

func unmarshalProfile(education, experience, skills []byte, summary string) (candidateDomain.Profile, error) {
	profile := candidateDomain.Profile{Summary: summary}

	if err := json.Unmarshal(education, &profile.Education); err != nil {
		return profile, apperrors.Wrap(err, "failed to unmarshal education")
	}
	if err := json.Unmarshal(experience, &profile.Experience); err != nil {
		return profile, apperrors.Wrap(err, "failed to unmarshal experience")
	}
	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return profile, apperrors.Wrap(err, "failed to unmarshal skills")
	}

	return profile, nil
}
