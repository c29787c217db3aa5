// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"strconv"

	"github.com/MKhiriev/domain-marketplace/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	takenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func statusStyle(status models.DomainStatus) lipgloss.Style {
	if status == models.StatusAvailable {
		return createdStyle
	}
	return takenStyle
}

func domainsTable(domains []models.Domain) string {
	rows := make([][]string, 0, len(domains))
	for _, d := range domains {
		rows = append(rows, []string{
			strconv.FormatInt(d.ID, 10),
			d.Name,
			strconv.FormatFloat(d.Price, 'f', 2, 64),
			string(d.Status),
			string(d.ListingType),
			d.CategoryName,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "PRICE", "STATUS", "LISTING", "CATEGORY").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}
