package utils

import "github.com/go-playground/validator/v10"

// MyValidator 全域共用，validator 本身可併發使用
var MyValidator = validator.New()
