// Package models contains the GORM persistence models for customers, pizzas and orders.
// Domain entities stay free of ORM tags; repositories convert at the boundary with
// ToDomain and the *FromDomain helpers. The schema itself, foreign keys included,
// comes from the SQL migrations.
package models
