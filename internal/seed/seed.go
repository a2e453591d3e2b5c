// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed bundles the fixed starter catalog. It is both the initial
// state of the in-memory backing and the silent fallback the remote
// backing serves when a read fails or comes back empty.
package seed

import "uikitlab/internal/models"

// baseTS is a fixed creation timestamp (epoch millis) so the seed data
// is identical across processes and test runs.
const baseTS = int64(1704067200000) // 2024-01-01T00:00:00Z

var categories = []models.Category{
	{ID: "buttons", Name: "Buttons", Slug: "buttons", ThumbURL: "/static/img/cat-buttons.svg", CreatedAt: baseTS, UpdatedAt: baseTS},
	{ID: "cards", Name: "Cards", Slug: "cards", ThumbURL: "/static/img/cat-cards.svg", CreatedAt: baseTS, UpdatedAt: baseTS},
	{ID: "alerts", Name: "Alerts", Slug: "alerts", ThumbURL: "/static/img/cat-alerts.svg", CreatedAt: baseTS, UpdatedAt: baseTS},
	{ID: "forms", Name: "Forms", Slug: "forms", ThumbURL: "/static/img/cat-forms.svg", CreatedAt: baseTS, UpdatedAt: baseTS},
	{ID: "navigation", Name: "Navigation", Slug: "navigation", ThumbURL: "/static/img/cat-navigation.svg", CreatedAt: baseTS, UpdatedAt: baseTS},
}

var components = []models.Component{
	{
		ID: "primary-button", Name: "Primary Button", Slug: "primary-button",
		CategoryID: "buttons", Style: models.StyleNative,
		Tags: []string{"button", "cta"},
		Code: models.ComponentCode{
			HTML: `<button class="btn-primary">Click me</button>`,
			CSS:  ".btn-primary{background:#4f46e5;color:#fff;border:0;border-radius:8px;padding:10px 18px;font-size:15px;cursor:pointer}\n.btn-primary:hover{background:#4338ca}",
			JS:   `document.querySelector('.btn-primary').addEventListener('click',()=>console.log('clicked'));`,
		},
		Props:      map[string]string{"radius": "8px", "color": "#4f46e5", "contentText": "Click me"},
		IsFeatured: true,
		CreatedAt:  baseTS, UpdatedAt: baseTS,
	},
	{
		ID: "bootstrap-button-group", Name: "Button Group", Slug: "bootstrap-button-group",
		CategoryID: "buttons", Style: models.StyleBootstrap,
		Tags: []string{"button", "group", "bootstrap"},
		Code: models.ComponentCode{
			HTML: `<div class="btn-group" role="group"><button type="button" class="btn btn-primary">Left</button><button type="button" class="btn btn-outline-primary">Middle</button><button type="button" class="btn btn-outline-primary">Right</button></div>`,
		},
		CreatedAt: baseTS, UpdatedAt: baseTS,
	},
	{
		ID: "tailwind-pricing-card", Name: "Pricing Card", Slug: "tailwind-pricing-card",
		CategoryID: "cards", Style: models.StyleTailwind,
		Tags: []string{"card", "pricing", "tailwind"},
		Code: models.ComponentCode{
			HTML: `<div class="max-w-sm rounded-2xl border border-gray-200 p-6 shadow-sm"><p class="text-sm text-gray-500">Starter</p><p class="mt-2 text-4xl font-bold">$9<span class="text-base font-normal text-gray-500">/mo</span></p><button class="mt-6 w-full rounded-lg bg-indigo-600 py-2 text-white hover:bg-indigo-700">Choose plan</button></div>`,
		},
		IsFeatured: true,
		CreatedAt:  baseTS, UpdatedAt: baseTS,
	},
	{
		ID: "dismissible-alert", Name: "Dismissible Alert", Slug: "dismissible-alert",
		CategoryID: "alerts", Style: models.StyleNative,
		Tags: []string{"alert", "notice"},
		Code: models.ComponentCode{
			HTML: `<div class="alert" id="demo-alert"><span>Settings saved successfully.</span><button id="demo-alert-close" aria-label="Close">&times;</button></div>`,
			CSS:  ".alert{display:flex;align-items:center;justify-content:space-between;gap:12px;background:#ecfdf5;border:1px solid #10b981;color:#065f46;border-radius:10px;padding:12px 16px}\n.alert button{background:none;border:0;font-size:18px;cursor:pointer;color:inherit}",
			JS:   `document.getElementById('demo-alert-close').addEventListener('click',()=>document.getElementById('demo-alert').remove());`,
		},
		CreatedAt: baseTS, UpdatedAt: baseTS,
	},
	{
		ID: "bootstrap-login-form", Name: "Login Form", Slug: "bootstrap-login-form",
		CategoryID: "forms", Style: models.StyleBootstrap,
		Tags: []string{"form", "login", "bootstrap"},
		Code: models.ComponentCode{
			HTML: `<form class="p-4 border rounded-3" style="max-width:360px"><div class="mb-3"><label class="form-label">Email</label><input type="email" class="form-control" placeholder="you@example.com"></div><div class="mb-3"><label class="form-label">Password</label><input type="password" class="form-control"></div><button type="submit" class="btn btn-primary w-100">Sign in</button></form>`,
		},
		CreatedAt: baseTS, UpdatedAt: baseTS,
	},
	{
		ID: "tailwind-navbar", Name: "Navbar", Slug: "tailwind-navbar",
		CategoryID: "navigation", Style: models.StyleTailwind,
		Tags: []string{"nav", "header", "tailwind"},
		Code: models.ComponentCode{
			HTML: `<nav class="flex items-center justify-between rounded-xl bg-gray-900 px-6 py-3 text-white"><span class="font-semibold">Acme</span><div class="flex gap-6 text-sm text-gray-300"><a class="hover:text-white" href="#">Docs</a><a class="hover:text-white" href="#">Pricing</a><a class="hover:text-white" href="#">Blog</a></div></nav>`,
		},
		IsDraft:   true,
		CreatedAt: baseTS, UpdatedAt: baseTS,
	},
}

// Categories returns a fresh copy of the seed categories. Callers may
// mutate the result freely.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	for i, c := range categories {
		out[i] = c.Clone()
	}
	return out
}

// Components returns a fresh copy of the seed components.
func Components() []models.Component {
	out := make([]models.Component, len(components))
	for i, c := range components {
		out[i] = c.Clone()
	}
	return out
}

// ComponentByID scans the seed components for an ID match. Returns nil
// when absent.
func ComponentByID(id string) *models.Component {
	for _, c := range components {
		if c.ID == id {
			clone := c.Clone()
			return &clone
		}
	}
	return nil
}
