package services

import (
	"testing"
	"time"
)

func newCacheOnlyCertificateService() *CertificateService {
	return &CertificateService{cache: make(map[string]*CacheEntry)}
}

func TestInvalidateCertificateCachesDropsListingsAndSummaries(t *testing.T) {
	s := newCacheOnlyCertificateService()

	s.setCache("certificate_7", "record", time.Minute)
	s.setCache("certificates_all", "list", time.Minute)
	s.setCache("certificates_customer_3", "list", time.Minute)
	s.setCache("certificates_status_Completed", "list", time.Minute)
	s.setCache("certificate_summaries", "dashboard", time.Minute)
	s.setCache("certificate_summaries_customer_3", "dashboard", time.Minute)

	s.invalidateCertificateCaches(7)

	for _, key := range []string{
		"certificate_7",
		"certificates_all",
		"certificates_customer_3",
		"certificates_status_Completed",
		"certificate_summaries",
		"certificate_summaries_customer_3",
	} {
		if _, found := s.getCache(key); found {
			t.Fatalf("%q still cached after a certificate mutation", key)
		}
	}
}

func TestInvalidateCertificateCachesKeepsOtherRecords(t *testing.T) {
	s := newCacheOnlyCertificateService()

	s.setCache("certificate_8", "record", time.Minute)
	s.invalidateCertificateCaches(7)

	if _, found := s.getCache("certificate_8"); !found {
		t.Fatal("an unrelated certificate record was evicted")
	}
}
