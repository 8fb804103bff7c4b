package model

import (
	"strings"
	"testing"
)

func TestCanTransitionTo_Lifecycle(t *testing.T) {
	cases := []struct {
		from, to VideoStatus
		want     bool
	}{
		{VideoStatusPending, VideoStatusRendering, true},
		{VideoStatusPending, VideoStatusPosted, false},
		{VideoStatusRendering, VideoStatusRendered, true},
		{VideoStatusRendering, VideoStatusScheduled, false},
		{VideoStatusRendered, VideoStatusScheduled, true},
		{VideoStatusScheduled, VideoStatusPosting, true},
		{VideoStatusScheduled, VideoStatusRendered, false},
		{VideoStatusPosting, VideoStatusPosted, true},
		{VideoStatusPosted, VideoStatusFailed, false},
		{VideoStatusFailed, VideoStatusScheduled, true},
		{VideoStatusFailed, VideoStatusRendering, true},
		{VideoStatusFailed, VideoStatusPosted, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanTransitionTo_FailedFromAnyActiveStatus(t *testing.T) {
	for _, from := range []VideoStatus{VideoStatusPending, VideoStatusRendering, VideoStatusRendered, VideoStatusScheduled, VideoStatusPosting} {
		if !from.CanTransitionTo(VideoStatusFailed) {
			t.Errorf("%s should be allowed to fail", from)
		}
	}
}

func TestTransitionTo_Illegal(t *testing.T) {
	v := &Video{Status: VideoStatusPosted}
	err := v.TransitionTo(VideoStatusScheduled)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if v.Status != VideoStatusPosted {
		t.Errorf("status should be untouched, got %q", v.Status)
	}
}

func TestIsValid(t *testing.T) {
	if !VideoStatusRendering.IsValid() {
		t.Error("rendering should be valid")
	}
	if VideoStatus("archived").IsValid() {
		t.Error("archived should not be valid")
	}
}

func TestMarkFailed(t *testing.T) {
	v := &Video{Status: VideoStatusPosting}
	if err := v.MarkFailed("boom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != VideoStatusFailed {
		t.Errorf("expected failed, got %q", v.Status)
	}
	if v.FailureMessage == nil || *v.FailureMessage != "boom" {
		t.Errorf("expected failure message %q, got %v", "boom", v.FailureMessage)
	}
}

func TestFullCaption(t *testing.T) {
	v := &Video{Caption: "hello", Hashtags: "#reels #go"}
	got := v.FullCaption()
	if !strings.HasPrefix(got, "hello") || !strings.HasSuffix(got, "#reels #go") {
		t.Errorf("unexpected caption %q", got)
	}
	if got != "hello\n\n#reels #go" {
		t.Errorf("expected blank line between caption and hashtags, got %q", got)
	}

	v = &Video{Caption: "only caption"}
	if v.FullCaption() != "only caption" {
		t.Errorf("unexpected caption %q", v.FullCaption())
	}

	v = &Video{Hashtags: "#only"}
	if v.FullCaption() != "#only" {
		t.Errorf("unexpected caption %q", v.FullCaption())
	}
}
