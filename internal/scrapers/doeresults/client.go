// Package doeresults scrapes result memos off the GITAM online results
// report viewer.
package doeresults

import (
	"context"
	"fmt"
	"resultsdb/internal/components/telemetry"
	"resultsdb/internal/results"
	"resultsdb/lib/restyutil"
	"strconv"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	report_client_fetch_page = "client.fetch-page"
	report_client_parse      = "client.parse"
)

const DefaultBaseUrl = "http://doeresults.gitam.edu"

const reportViewerPath = "/onlineresults/pages/NewReportviewer1.aspx"

type ClientOptions struct {
	BaseUrl string
	// defaults to 30 seconds
	Timeout time.Duration
	// wraps the transport with cloudflare-bp's browser-like headers and TLS config
	CloudflareBypass bool
	// if set, every request/response pair is written to it
	Output restyutil.InstrumentOutput
}

type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	tel = telemetry.NewScopedAPI("doeresults", tel)
	telemetry.InstrumentResty(client, "scrapers/doeresults/http", tel, opts.Output)

	return Client{http: client, tel: tel}
}

// FetchPage requests the report viewer page of a single (regno, semester).
func (c Client) FetchPage(ctx context.Context, regno string, sem int) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("sem", strconv.Itoa(sem)).
		SetQueryParam("reg", regno).
		Get(reportViewerPath)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_page, fmt.Errorf("fetch: %w", err), regno, sem)
		return nil, err
	}
	if !res.IsSuccess() {
		err = fmt.Errorf("unexpected status: %s", res.Status())
		c.tel.ReportBroken(report_client_fetch_page, err, regno, sem)
		return nil, err
	}
	return res.Body(), nil
}

// FetchResult fetches and parses a result memo. It returns ErrNoResult or
// results.ErrMalformed when the page does not hold a usable memo.
func (c Client) FetchResult(ctx context.Context, regno string, sem int) (results.Result, error) {
	body, err := c.FetchPage(ctx, regno, sem)
	if err != nil {
		return results.Result{}, err
	}
	res, err := Parse(body)
	if err != nil {
		c.tel.ReportDebug(report_client_parse, regno, sem, err)
		return results.Result{}, err
	}
	return res, nil
}
