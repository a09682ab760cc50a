package models_test

import (
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/models"
)

func TestStatusLifecycle(t *testing.T) {
	steps := []models.CertificateStatus{
		models.StatusPendingPayment,
		models.StatusPaymentConfirmed,
		models.StatusInspectionCompleted,
		models.StatusPendingCertification,
		models.StatusCompleted,
	}
	for i := 0; i < len(steps)-1; i++ {
		if !models.CanTransition(steps[i], steps[i+1]) {
			t.Fatalf("transition %s -> %s should be allowed", steps[i], steps[i+1])
		}
	}
}

func TestReportFlowTransitions(t *testing.T) {
	if !models.CanTransition(models.StatusCompleted, models.StatusPendingCertification) {
		t.Fatal("a completed report must be reopenable")
	}
	if !models.CanTransition(models.StatusPendingCertification, models.StatusCompleted) {
		t.Fatal("finishing a report must be allowed")
	}
}

func TestCancellationOnlyFromEarlyStates(t *testing.T) {
	for _, from := range []models.CertificateStatus{
		models.StatusPendingPayment,
		models.StatusPaymentConfirmed,
		models.StatusInspectionCompleted,
	} {
		if !models.CanTransition(from, models.StatusCancelled) {
			t.Fatalf("%s should be cancellable", from)
		}
	}
	for _, from := range []models.CertificateStatus{
		models.StatusPendingCertification,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		if models.CanTransition(from, models.StatusCancelled) {
			t.Fatalf("%s should not be cancellable", from)
		}
	}
}

func TestNoSkippingAndNoExitFromCancelled(t *testing.T) {
	if models.CanTransition(models.StatusPendingPayment, models.StatusCompleted) {
		t.Fatal("statuses must not be skippable")
	}
	if models.CanTransition(models.StatusCancelled, models.StatusPendingPayment) {
		t.Fatal("cancelled is terminal")
	}
}

func TestValidStatus(t *testing.T) {
	if !models.ValidStatus(models.StatusCompleted) {
		t.Fatal("Completed is a valid status")
	}
	if models.ValidStatus("Refunded") {
		t.Fatal("unknown status accepted")
	}
}
