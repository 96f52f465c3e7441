package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/wisepythagoras/geoip-normalizer/db"
	"github.com/wisepythagoras/geoip-normalizer/dns"
	"github.com/wisepythagoras/geoip-normalizer/types"
)

type options struct {
	ip         string
	domain     string
	file       string
	dbPath     string
	language   string
	dnsServers string
	configPath string
	info       bool
}

func parseFlags() options {
	var o options

	flag.StringVar(&o.ip, "ip", "", "An IP address")
	flag.StringVar(&o.domain, "domain", "", "A domain name")
	flag.StringVar(&o.file, "file", "", "A file with one IP address or domain name per line")
	flag.StringVar(&o.dbPath, "db", "", "The path to the GeoIP2/GeoLite2 City database")
	flag.StringVar(&o.language, "lang", "", "The language used for names (defaults to en)")
	flag.StringVar(&o.dnsServers, "dns-servers", "", "A file with the list of DNS servers. If not specified defaults to Cloudflare, Google, and OpenDNS")
	flag.StringVar(&o.configPath, "config", "", "A JSON config file")
	flag.BoolVar(&o.info, "info", false, "Print the database metadata")

	flag.Parse()

	return o
}

func applyFlags(config *Config, o options) error {
	if len(o.dbPath) > 0 {
		config.DatabasePath = o.dbPath
	}

	if len(o.language) > 0 {
		config.Language = o.language
	}

	if len(o.dnsServers) > 0 {
		file, err := os.Open(o.dnsServers)

		if err != nil {
			return fmt.Errorf("unable to open the DNS server list: %w", err)
		}

		defer file.Close()
		config.DNSServers, err = dns.ParseServerList(file)

		if err != nil {
			return fmt.Errorf("error while reading the DNS server list: %w", err)
		}
	}

	return nil
}

func printJSON(w io.Writer, v any) error {
	obj, err := json.MarshalIndent(v, "", "  ")

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(obj))

	return err
}

func printMetadata(w io.Writer, database *db.DB) {
	meta := database.Metadata()
	label := color.New(color.FgCyan)

	label.Fprint(w, "Type:        ")
	fmt.Fprintln(w, meta.DatabaseType)
	label.Fprint(w, "Built:       ")
	fmt.Fprintln(w, time.Unix(int64(meta.BuildEpoch), 0).UTC().Format(time.RFC3339))
	label.Fprint(w, "IP version:  ")
	fmt.Fprintln(w, meta.IPVersion)
	label.Fprint(w, "Languages:   ")
	fmt.Fprintln(w, strings.Join(meta.Languages, ", "))

	keys := make([]string, 0, len(meta.Description))

	for k := range meta.Description {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		label.Fprintf(w, "Description: ")
		fmt.Fprintf(w, "[%s] %s\n", k, meta.Description[k])
	}
}

// lookupEntry handles a single IP address or domain name.
func lookupEntry(ctx context.Context, database *db.DB, config *Config, entry string) any {
	if IsValidIP(entry) {
		response := &types.ApiResponse{Success: true, Status: "Retrieved"}
		rec, err := database.GetIPInformation(strings.TrimSpace(entry), config.Language)

		if err != nil {
			response.Success = false
			response.Status = err.Error()
		}

		response.Record = rec

		return response
	}

	response := &types.MultiApiResponse{Success: true, Status: "Retrieved"}
	recs, err := database.GetDomainInformation(ctx, entry, config.DNSServers, dns.Lookup, config.Language)

	if err != nil {
		response.Success = false
		response.Status = err.Error()
	}

	response.Records = recs

	return response
}

func main() {
	o := parseFlags()

	config, err := ReadConfig(o.configPath)

	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}

	if err := applyFlags(config, o); err != nil {
		logrus.WithError(err).Fatal("Failed to apply flags")
	}

	if level, err := logrus.ParseLevel(config.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.WithField("log_level", config.LogLevel).Warn("Unknown log level, keeping the default")
	}

	// Open the city database.
	database, err := db.Open(config.DatabasePath)

	if err != nil {
		logrus.WithError(err).Fatal("Failed to open the database")
	}

	defer database.Close()

	ctx := context.Background()
	entries := []string{}

	if len(o.ip) > 0 {
		entries = append(entries, o.ip)
	}

	if len(o.domain) > 0 {
		entries = append(entries, o.domain)
	}

	if len(o.file) > 0 {
		file, err := os.Open(o.file)

		if err != nil {
			logrus.WithError(err).Fatal("Unable to open the address list")
		}

		list, err := ParseAddressList(file)
		file.Close()

		if err != nil {
			logrus.WithError(err).Fatal("Error while parsing the address list")
		}

		entries = append(entries, list...)
	}

	if o.info {
		printMetadata(os.Stdout, database)
	}

	if len(entries) == 0 {
		if !o.info {
			color.Yellow("Nothing queried")
		}

		return
	}

	for _, entry := range entries {
		if err := printJSON(os.Stdout, lookupEntry(ctx, database, config, entry)); err != nil {
			logrus.WithError(err).Error("Failed to print the result")
		}
	}
}
