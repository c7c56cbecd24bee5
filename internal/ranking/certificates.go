package ranking

import "github.com/jonathan/jd-matcher/internal/parsing"

const neutralCertificate = 50.0

// CertificateScore is the certificate subscore and the JD certificates the
// CV lacks.
type CertificateScore struct {
	Score    float64
	Required []string
	Missing  []string
}

// ScoreCertificates scores the share of JD certificates present in the CV.
func ScoreCertificates(jd, cv parsing.Document) CertificateScore {
	return scoreCertificates(ProfileFromDocument(jd), cv)
}

func scoreCertificates(jd *JobProfile, cv parsing.Document) CertificateScore {
	result := CertificateScore{Required: jd.Certificates}
	if len(result.Required) == 0 {
		result.Score = neutralCertificate
		return result
	}

	terms := parsing.NewTermSet(cv.Normalized)
	present := 0
	for _, cert := range result.Required {
		if terms.Has(cert) {
			present++
		} else {
			result.Missing = append(result.Missing, cert)
		}
	}

	result.Score = maxScore * float64(present) / float64(len(result.Required))
	return result
}
