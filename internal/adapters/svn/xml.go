package svn

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"svnbranch/internal/domain"
)

// infoXML mirrors `svn info --xml`
type infoXML struct {
	Entries []struct {
		Commit struct {
			Revision int64 `xml:"revision,attr"`
		} `xml:"commit"`
		Kind       string `xml:"kind,attr"`
		Path       string `xml:"path,attr"`
		Repository struct {
			Root string `xml:"root"`
		} `xml:"repository"`
		Revision int64  `xml:"revision,attr"`
		URL      string `xml:"url"`
		WCInfo   struct {
			WCRoot string `xml:"wcroot-abspath"`
		} `xml:"wc-info"`
	} `xml:"entry"`
}

func parseInfo(data []byte) (*domain.WorkingCopyInfo, error) {
	var doc infoXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse svn info output: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("svn info returned no entries")
	}
	e := doc.Entries[0]
	return &domain.WorkingCopyInfo{
		Kind:           parseKind(e.Kind),
		LastChangedRev: domain.Revision(e.Commit.Revision),
		Path:           e.Path,
		RepoRootURL:    strings.TrimSuffix(e.Repository.Root, "/"),
		Revision:       domain.Revision(e.Revision),
		URL:            e.URL,
		WCRoot:         e.WCInfo.WCRoot,
	}, nil
}

func parseKind(kind string) domain.NodeKind {
	switch kind {
	case "file":
		return domain.NodeFile
	case "dir":
		return domain.NodeDir
	}
	return domain.NodeNone
}

// statusXML mirrors `svn status --xml`
type statusXML struct {
	Targets []struct {
		Entries []struct {
			Path        string `xml:"path,attr"`
			ReposStatus *struct {
				Item  string `xml:"item,attr"`
				Props string `xml:"props,attr"`
			} `xml:"repos-status"`
			WCStatus struct {
				Item           string `xml:"item,attr"`
				Props          string `xml:"props,attr"`
				Switched       bool   `xml:"switched,attr"`
				TreeConflicted bool   `xml:"tree-conflicted,attr"`
			} `xml:"wc-status"`
		} `xml:"entry"`
	} `xml:"target"`
}

func parseStatus(data []byte) ([]domain.StatusEntry, error) {
	var doc statusXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse svn status output: %w", err)
	}
	var entries []domain.StatusEntry
	for _, target := range doc.Targets {
		for _, e := range target.Entries {
			entry := domain.StatusEntry{
				Item:           domain.StatusKind(e.WCStatus.Item),
				Path:           e.Path,
				Props:          domain.StatusKind(e.WCStatus.Props),
				Switched:       e.WCStatus.Switched,
				TreeConflicted: e.WCStatus.TreeConflicted,
			}
			if rs := e.ReposStatus; rs != nil {
				entry.OutOfDate = (rs.Item != "" && rs.Item != "none") || (rs.Props != "" && rs.Props != "none")
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// listXML mirrors `svn list --xml`
type listXML struct {
	Lists []struct {
		Entries []struct {
			Kind string `xml:"kind,attr"`
			Name string `xml:"name"`
		} `xml:"entry"`
	} `xml:"list"`
}

func parseList(data []byte) ([]domain.DirEntry, error) {
	var doc listXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse svn list output: %w", err)
	}
	var entries []domain.DirEntry
	for _, l := range doc.Lists {
		for _, e := range l.Entries {
			entries = append(entries, domain.DirEntry{Kind: parseKind(e.Kind), Name: e.Name})
		}
	}
	return entries, nil
}

// logXML mirrors `svn log --xml`
type logXML struct {
	Entries []struct {
		Author   string `xml:"author"`
		Date     string `xml:"date"`
		Message  string `xml:"msg"`
		Revision int64  `xml:"revision,attr"`
	} `xml:"logentry"`
}

func parseLog(data []byte) ([]domain.LogEntry, error) {
	var doc logXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse svn log output: %w", err)
	}
	entries := make([]domain.LogEntry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		entry := domain.LogEntry{
			Author:   e.Author,
			Message:  e.Message,
			Revision: domain.Revision(e.Revision),
		}
		if e.Date != "" {
			if t, err := time.Parse(time.RFC3339Nano, e.Date); err == nil {
				entry.Date = t
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// propertiesXML mirrors `svn proplist --xml -v`
type propertiesXML struct {
	Targets []struct {
		Properties []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:",chardata"`
		} `xml:"property"`
	} `xml:"target"`
}

func parseProperties(data []byte) (map[string]string, error) {
	props := make(map[string]string)
	if len(bytes.TrimSpace(data)) == 0 {
		return props, nil
	}
	var doc propertiesXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse svn proplist output: %w", err)
	}
	for _, t := range doc.Targets {
		for _, p := range t.Properties {
			props[p.Name] = p.Value
		}
	}
	return props, nil
}
