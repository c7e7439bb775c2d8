package jsonresume

import (
	"encoding/json"
	"strings"
	"testing"

	"go-resume-builder/internal/domain"
)

func TestMapBasics(t *testing.T) {
	doc := Map(&domain.Resume{
		FullName:      "Jane Doe",
		Position:      "Backend Engineer",
		Address:       "Berlin",
		Email:         "jane@example.com",
		Phone:         "+49 123",
		Linkedin:      "https://linkedin.com/in/jane",
		Github:        "https://github.com/jane",
		CareerSummary: "Seasoned engineer.",
	})

	b := doc.Basics
	if b.Name != "Jane Doe" || b.Label != "Backend Engineer" || b.Summary != "Seasoned engineer." {
		t.Fatalf("basics = %+v", b)
	}
	if b.Location == nil || b.Location.Address != "Berlin" {
		t.Fatalf("location = %+v", b.Location)
	}
	if len(b.Profiles) != 2 {
		t.Fatalf("profiles = %+v", b.Profiles)
	}
	if b.Profiles[0].Network != "LinkedIn" || b.Profiles[1].Network != "GitHub" {
		t.Fatalf("profile order = %+v", b.Profiles)
	}
}

func TestMapProfilesOptional(t *testing.T) {
	doc := Map(&domain.Resume{FullName: "Jane", Github: "https://github.com/jane"})
	if len(doc.Basics.Profiles) != 1 || doc.Basics.Profiles[0].Network != "GitHub" {
		t.Fatalf("profiles = %+v", doc.Basics.Profiles)
	}
	if doc.Basics.Location != nil {
		t.Fatalf("location should be omitted, got %+v", doc.Basics.Location)
	}
}

func TestMapCollections(t *testing.T) {
	doc := Map(&domain.Resume{
		Experiences: []domain.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: "2020", Description: "Built API; Cut latency"},
		},
		Educations: []domain.Education{
			{Degree: "BSc", University: "MIT", StartYear: "2014", EndYear: "2018"},
		},
		Skills: []domain.Skill{
			{SkillName: "Go;Redis", SkillType: "Technical"},
			{SkillName: "Mentoring"},
		},
		Certificates: []domain.Certificate{
			{CertName: "CKA", IssuedBy: "CNCF", IssuedDate: "2022"},
		},
		Languages: []domain.LanguageSkill{
			{Language: "English", Proficiency: domain.ProficiencyFluent},
		},
		References: []domain.Reference{
			{RefName: "John", Position: "CTO", Company: "Acme", Email: "john@acme.io"},
		},
	})

	if len(doc.Work) != 1 || doc.Work[0].Name != "Acme" || len(doc.Work[0].Highlights) != 2 {
		t.Fatalf("work = %+v", doc.Work)
	}
	if len(doc.Education) != 1 || doc.Education[0].Institution != "MIT" || doc.Education[0].StudyType != "BSc" {
		t.Fatalf("education = %+v", doc.Education)
	}
	if len(doc.Skills) != 2 {
		t.Fatalf("skills = %+v", doc.Skills)
	}
	// 无分类归入 Skills
	if doc.Skills[1].Name != "Skills" || doc.Skills[1].Keywords[0] != "Mentoring" {
		t.Fatalf("skills[1] = %+v", doc.Skills[1])
	}
	if doc.Languages[0].Fluency != domain.ProficiencyFluent {
		t.Fatalf("languages = %+v", doc.Languages)
	}
	if got := doc.References[0].Reference; got != "CTO, Acme, john@acme.io" {
		t.Fatalf("reference line = %q", got)
	}
}

func TestMapEmptyIsValidJSON(t *testing.T) {
	raw, err := json.Marshal(Map(nil))
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)
	// 集合序列化成 []，不能是 null
	if strings.Contains(s, "null") {
		t.Fatalf("nil collections leaked into JSON: %s", s)
	}
	if !strings.Contains(s, `"$schema"`) {
		t.Fatalf("missing $schema: %s", s)
	}
}
