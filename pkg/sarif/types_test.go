package sarif

import "testing"

func TestFirstRun_PicksFirstOfMany(t *testing.T) {
	doc := &Document{
		Version: "2.1.0",
		Runs: []Run{
			{Tool: Tool{Driver: Driver{Name: "first"}}},
			{Tool: Tool{Driver: Driver{Name: "second"}}},
		},
	}
	run := doc.FirstRun()
	if run == nil {
		t.Fatal("expected a run")
	}
	if run.Tool.Driver.Name != "first" {
		t.Errorf("expected first run, got tool %q", run.Tool.Driver.Name)
	}
}

func TestFirstRun_NilDocument(t *testing.T) {
	var doc *Document
	if doc.FirstRun() != nil {
		t.Error("nil document should have nil first run")
	}
}

func TestNotifications_RunLevel(t *testing.T) {
	run := &Run{
		ToolExecutionNotifications: []Notification{
			{Level: "error", Message: Message{Text: "cannot parse main.go"}},
		},
	}
	notes := run.Notifications()
	if len(notes) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notes))
	}
	if notes[0].Message.Text != "cannot parse main.go" {
		t.Errorf("unexpected message: %q", notes[0].Message.Text)
	}
}

func TestNotifications_FromInvocations(t *testing.T) {
	run := &Run{
		Invocations: []Invocation{
			{ToolExecutionNotifications: []Notification{
				{Message: Message{Text: "one"}},
			}},
			{ToolExecutionNotifications: []Notification{
				{Message: Message{Text: "two"}},
			}},
		},
	}
	notes := run.Notifications()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notes))
	}
	if notes[0].Message.Text != "one" || notes[1].Message.Text != "two" {
		t.Errorf("invocation order not preserved: %v", notes)
	}
}

func TestNotifications_RunLevelWinsOverInvocations(t *testing.T) {
	run := &Run{
		ToolExecutionNotifications: []Notification{
			{Message: Message{Text: "run-level"}},
		},
		Invocations: []Invocation{
			{ToolExecutionNotifications: []Notification{
				{Message: Message{Text: "invocation-level"}},
			}},
		},
	}
	notes := run.Notifications()
	if len(notes) != 1 || notes[0].Message.Text != "run-level" {
		t.Errorf("run-level notifications should win, got %v", notes)
	}
}

func TestNotifications_NilRun(t *testing.T) {
	var run *Run
	if run.Notifications() != nil {
		t.Error("nil run should have nil notifications")
	}
}
